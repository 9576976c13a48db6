// Package seed holds the mock data the dashboard starts every session with.
package seed

import (
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentRecords returns the initial payment details report rows.
func PaymentRecords() []domain.Record {
	return []domain.Record{
		{ID: 1, Name: "Arun Kumar", Company: "Chennai ABC Pvt Ltd", Amount: "₹10,000", Status: domain.StatusPending, Details: "Invoice from Chennai branch pending", Date: "2024-02-01"},
		{ID: 2, Name: "Chandran", Company: "Coimbatore XYZ Ltd", Amount: "₹15,000", Status: domain.StatusProcess, Details: "Invoice from Coimbatore branch in process", Date: "2024-02-02"},
		{ID: 3, Name: "Prakash", Company: "Madurai LMN Enterprises", Amount: "₹12,000", Status: domain.StatusPaid, Details: "Invoice from Madurai branch paid", Date: "2024-02-03"},
		{ID: 4, Name: "Vignesh", Company: "Trichy DEF Solutions", Amount: "₹20,000", Status: domain.StatusPending, Details: "Invoice from Trichy branch pending", Date: "2024-02-04"},
		{ID: 5, Name: "Saravanan", Company: "Salem GHI Industries", Amount: "₹18,000", Status: domain.StatusProcess, Details: "Invoice from Salem branch in process", Date: "2024-02-05"},
		{ID: 6, Name: "Manikandan", Company: "Thanjavur JKL Tech", Amount: "₹25,000", Status: domain.StatusPending, Details: "Invoice from Thanjavur branch pending", Date: "2024-02-06"},
		{ID: 7, Name: "Deepa", Company: "Villupuram MNO Ltd", Amount: "₹22,000", Status: domain.StatusPaid, Details: "Invoice from Villupuram branch paid", Date: "2024-02-07"},
		{ID: 8, Name: "Ganesh", Company: "Dindigul PQR Traders", Amount: "₹30,000", Status: domain.StatusProcess, Details: "Invoice from Dindigul branch in process", Date: "2024-02-08"},
		{ID: 9, Name: "Krishna", Company: "Cuddalore STU Enterprises", Amount: "₹28,000", Status: domain.StatusPending, Details: "Invoice from Cuddalore branch pending", Date: "2024-02-09"},
		{ID: 10, Name: "Murali", Company: "Tirunelveli VWX Pvt Ltd", Amount: "₹35,000", Status: domain.StatusPaid, Details: "Invoice from Tirunelveli branch paid", Date: "2024-02-10"},
	}
}

// Attendance returns the precomputed attendance figures.
func Attendance() domain.AttendanceSummary {
	return domain.AttendanceSummary{
		TotalEmployees:    150,
		PresentEmployees:  120,
		AbsentEmployees:   30,
		LateEmployees:     5,
		PresentPercentage: decimal.NewFromInt(80),
		AbsentPercentage:  decimal.NewFromInt(20),
		LatePercentage:    decimal.NewFromInt(3),
		MonthlyLabels:     []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		MonthlyAttendance: []int{75, 80, 85, 90, 95, 85, 80, 78, 88, 92, 96, 98},
		DailyLabels:       []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		DailyAttendance:   []int{80, 85, 82, 90, 88, 85, 91},
	}
}
