package main

import (
	"log"
	"time"

	"dimensions/config"
	"dimensions/database"
	"dimensions/models"
)

// Seeds a small demo dataset: two users, one course with a folded
// subsection, a competency linked to the course, and a template plan.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	admin := models.User{
		Name:     "Demo Admin",
		Email:    "admin@example.com",
		Password: "$2a$10$7EqJtq98hPqEX7fNZaFWoOa5DCmYCBwVZMh0g1yWzfQz4cMYBv3t6",
		Role:     "ADMIN",
	}
	student := models.User{
		Name:     "Demo Student",
		Email:    "student@example.com",
		Password: "$2a$10$7EqJtq98hPqEX7fNZaFWoOa5DCmYCBwVZMh0g1yWzfQz4cMYBv3t6",
		Role:     "STUDENT",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := db.Create(&student).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	course := models.Course{
		FullName:         "Introduction to Data Handling",
		ShortName:        "DATA101",
		Visible:          true,
		StartDate:        time.Now().AddDate(0, -1, 0),
		EnableCompletion: true,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}

	intro := models.Section{CourseID: course.ID, Name: "Introduction", OrderIndex: 1, Visible: true}
	practice := models.Section{CourseID: course.ID, Name: "Practice", OrderIndex: 2, Visible: true}
	exercises := models.Section{CourseID: course.ID, Name: "Exercises", OrderIndex: 3, Visible: true, Component: "mod_subsection"}
	for _, section := range []*models.Section{&intro, &practice, &exercises} {
		if err := db.Create(section).Error; err != nil {
			log.Fatalf("Failed to seed sections: %v", err)
		}
	}

	activities := []models.Activity{
		{CourseID: course.ID, SectionID: intro.ID, Name: "Welcome video", ModName: "page", OrderIndex: 1, CompletionTracking: models.TrackingManual, Visible: true},
		{CourseID: course.ID, SectionID: intro.ID, Name: "Course outline quiz", ModName: "quiz", OrderIndex: 2, CompletionTracking: models.TrackingAutomatic, Visible: true},
		{CourseID: course.ID, SectionID: practice.ID, Name: "Exercises", ModName: models.ModSubsection, OrderIndex: 1, CompletionTracking: models.TrackingNone, Visible: true, DelegatedSectionID: &exercises.ID},
		{CourseID: course.ID, SectionID: exercises.ID, Name: "Worksheet", ModName: "assign", OrderIndex: 1, CompletionTracking: models.TrackingManual, Visible: true},
	}
	for i := range activities {
		if err := db.Create(&activities[i]).Error; err != nil {
			log.Fatalf("Failed to seed activities: %v", err)
		}
	}

	enrollment := models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: "ACTIVE"}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Fatalf("Failed to seed enrollment: %v", err)
	}
	role := models.RoleAssignment{UserID: student.ID, CourseID: course.ID, ShortName: "student"}
	if err := db.Create(&role).Error; err != nil {
		log.Fatalf("Failed to seed role: %v", err)
	}

	completion := models.ActivityCompletion{ActivityID: activities[0].ID, UserID: student.ID, State: 1}
	if err := db.Create(&completion).Error; err != nil {
		log.Fatalf("Failed to seed completion: %v", err)
	}

	competency := models.Competency{ShortName: "Data literacy", IDNumber: "COMP-DATA-1", Description: "Collect, clean and interpret data sets."}
	if err := db.Create(&competency).Error; err != nil {
		log.Fatalf("Failed to seed competency: %v", err)
	}
	courseLink := models.CourseCompetency{CourseID: course.ID, CompetencyID: competency.ID}
	if err := db.Create(&courseLink).Error; err != nil {
		log.Fatalf("Failed to seed course competency link: %v", err)
	}

	template := models.Template{ShortName: "Data skills pathway"}
	if err := db.Create(&template).Error; err != nil {
		log.Fatalf("Failed to seed template: %v", err)
	}
	templateLink := models.TemplateCompetency{TemplateID: template.ID, CompetencyID: competency.ID, OrderIndex: 0}
	if err := db.Create(&templateLink).Error; err != nil {
		log.Fatalf("Failed to seed template competency link: %v", err)
	}

	plan := models.Plan{UserID: student.ID, TemplateID: &template.ID, Name: "Data skills pathway", Status: "ACTIVE"}
	if err := db.Create(&plan).Error; err != nil {
		log.Fatalf("Failed to seed plan: %v", err)
	}

	log.Printf("Demo data seeded: course %d, competency %d, template %d, plan %d", course.ID, competency.ID, template.ID, plan.ID)
}
