package catalog

import "github.com/jmercado/uicguessr/internal/models"

// campusResources is the campus-wide resource directory shown outside the
// quiz flow.
var campusResources = []models.CampusResource{
	{Category: "Academic Support", Name: "Writing Center", Description: "Get help with papers, essays, and writing assignments from trained peer tutors.", Location: "University Hall"},
	{Category: "Academic Support", Name: "Math Tutoring Center", Description: "Free drop-in tutoring for math courses at all levels.", Location: "Taft Hall"},
	{Category: "Academic Support", Name: "Library Research Help", Description: "Librarians provide research assistance and source guidance.", Location: "Daley Library"},
	{Category: "Academic Support", Name: "Academic Success Programs", Description: "Workshops on study skills, time management, and academic strategies.", Location: "Student Center East"},
	{Category: "Health & Wellness", Name: "Campus Recreation", Description: "Fitness center, pool, courts, and group fitness classes.", Location: "ARC"},
	{Category: "Health & Wellness", Name: "Counseling Center", Description: "Mental health services and counseling for students.", Location: "Student Center East"},
	{Category: "Health & Wellness", Name: "Student Health Services", Description: "Medical care, immunizations, and health consultations.", Location: "Wellness Center"},
	{Category: "Health & Wellness", Name: "Disability Resource Center", Description: "Accommodations and support for students with disabilities.", Location: "University Hall"},
	{Category: "Student Services", Name: "Admissions Office", Description: "Information for prospective and new students.", Location: "University Hall"},
	{Category: "Student Services", Name: "Registrar", Description: "Course registration, transcripts, and academic records.", Location: "University Hall"},
	{Category: "Student Services", Name: "Financial Aid Office", Description: "Scholarships, grants, loans, and financial planning.", Location: "University Hall"},
	{Category: "Student Services", Name: "Career Services", Description: "Resume help, interview prep, internship and job search support.", Location: "Student Center East"},
	{Category: "Dining & Social", Name: "SCE Food Court", Description: "Multiple dining options including chains and local vendors.", Location: "Student Center East"},
	{Category: "Dining & Social", Name: "Library Café", Description: "Coffee shop for studying and quick meals.", Location: "Daley Library"},
	{Category: "Dining & Social", Name: "Student Organization Spaces", Description: "Meeting rooms and offices for registered student organizations.", Location: "Student Center East"},
	{Category: "Technology", Name: "Computer Labs", Description: "Free computer access with software for coursework.", Location: "Multiple Buildings"},
	{Category: "Technology", Name: "IT Help Desk", Description: "Technical support for UIC accounts and systems.", Location: "Daley Library"},
	{Category: "Technology", Name: "Maker Space", Description: "3D printing, laser cutting, and prototyping equipment.", Location: "Science & Engineering South"},
}
