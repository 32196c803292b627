package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// ReportService exports HR data as spreadsheets.
type ReportService struct {
	employees repository.EmployeeRepository
	pto       repository.PTORepository
}

func NewReportService(employees repository.EmployeeRepository, pto repository.PTORepository) *ReportService {
	return &ReportService{employees: employees, pto: pto}
}

// WriteRosterXLSX writes a workbook with an employee roster sheet and a PTO
// request sheet for one company.
func (s *ReportService) WriteRosterXLSX(ctx context.Context, companyID string, w io.Writer) error {
	employees, err := s.employees.List(ctx, companyID)
	if err != nil {
		return err
	}
	requests, err := s.pto.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const rosterSheet = "Employees"
	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return err
	}
	if err := writeRow(f, rosterSheet, 1, []interface{}{"Name", "Email", "Phone", "Role", "Position", "Clinic", "Active"}); err != nil {
		return err
	}
	for i, emp := range employees {
		row := []interface{}{emp.FullName(), emp.Email, emp.Phone, emp.Role, emp.Position, emp.ClinicID, emp.IsActive}
		if err := writeRow(f, rosterSheet, i+2, row); err != nil {
			return err
		}
	}

	const ptoSheet = "PTO Requests"
	if _, err := f.NewSheet(ptoSheet); err != nil {
		return err
	}
	if err := writeRow(f, ptoSheet, 1, []interface{}{"Employee ID", "Type", "Start", "End", "Days", "Status"}); err != nil {
		return err
	}
	for i, req := range requests {
		row := []interface{}{
			req.EmployeeID, req.LeaveType,
			req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"),
			req.RequestedDays, req.Status,
		}
		if err := writeRow(f, ptoSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WritePTOSummaryXLSX writes per-employee balance rows against a fixed
// allotment.
func (s *ReportService) WritePTOSummaryXLSX(ctx context.Context, companyID string, w io.Writer) error {
	employees, err := s.employees.List(ctx, companyID)
	if err != nil {
		return err
	}

	allotment := models.DefaultPTOAllotment
	if policy, err := s.pto.GetPolicy(ctx, companyID); err == nil && policy != nil {
		allotment = policy.AnnualAllotment
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "PTO Balances"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := writeRow(f, sheet, 1, []interface{}{"Employee", "Total", "Used", "Pending", "Available"}); err != nil {
		return err
	}
	for i, emp := range employees {
		requests, err := s.pto.ListByEmployee(ctx, emp.ID)
		if err != nil {
			return err
		}
		balance := models.ComputePTOBalance(requests, allotment)
		row := []interface{}{emp.FullName(), balance.Total, balance.Used, balance.Pending, balance.Available}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
