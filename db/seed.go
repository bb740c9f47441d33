package db

import (
	"log"

	"trackventory/models"

	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

// Seed populates the lookup tables with their default rows. Each table is
// only seeded when empty, so running it repeatedly is safe.
func Seed(conn *gorm.DB) {
	seedTable(conn, &models.Role{}, []models.Role{
		{RoleName: "Admin", Description: strptr("Full access to all resources")},
		{RoleName: "Manager", Description: strptr("Manages inventory and purchase approvals")},
		{RoleName: "Staff", Description: strptr("Handles day-to-day borrow transactions")},
		{RoleName: "Lecturer", Description: strptr("Can borrow items for teaching purposes")},
		{RoleName: "Student", Description: strptr("Can borrow items with standard limits")},
	})

	seedTable(conn, &models.Category{}, []models.Category{
		{CategoryName: "Electronics", Description: strptr("Electronic devices and components")},
		{CategoryName: "Office Supplies", Description: strptr("General office and administrative supplies")},
		{CategoryName: "Furniture", Description: strptr("Office and classroom furniture")},
		{CategoryName: "Books", Description: strptr("Educational and reference books")},
		{CategoryName: "Laboratory Equipment", Description: strptr("Scientific and research equipment")},
		{CategoryName: "Audio Visual", Description: strptr("Projectors, speakers, and AV equipment")},
		{CategoryName: "Computers", Description: strptr("Desktop computers, laptops, and accessories")},
		{CategoryName: "Sporting Goods", Description: strptr("Sports and physical education equipment")},
	})

	seedTable(conn, &models.BorrowStatus{}, []models.BorrowStatus{
		{StatusName: "Pending", BadgeColor: "#FFA500"},
		{StatusName: "Approved", BadgeColor: "#28A745"},
		{StatusName: "Borrowed", BadgeColor: "#007BFF"},
		{StatusName: "Returned", BadgeColor: "#6C757D"},
		{StatusName: "Overdue", BadgeColor: "#DC3545"},
		{StatusName: "Lost", BadgeColor: "#6F42C1"},
	})

	seedTable(conn, &models.RequestStatus{}, []models.RequestStatus{
		{StatusName: "Pending", BadgeColor: "#FFA500"},
		{StatusName: "Approved", BadgeColor: "#28A745"},
		{StatusName: "Rejected", BadgeColor: "#DC3545"},
		{StatusName: "In Progress", BadgeColor: "#007BFF"},
		{StatusName: "Completed", BadgeColor: "#6C757D"},
	})

	log.Println("Seed data loaded")
}

func seedTable[T any](conn *gorm.DB, model *T, rows []T) {
	var n int64
	if err := conn.Model(model).Count(&n).Error; err != nil {
		log.Printf("seed: count failed: %v", err)
		return
	}
	if n > 0 {
		return
	}
	if err := conn.Create(&rows).Error; err != nil {
		log.Printf("seed: insert failed: %v", err)
	}
}
