package catalog

import "github.com/jmercado/uicguessr/internal/models"

// buildings is the static reference table of quizzable campus locations.
// Never mutated at runtime.
var buildings = map[string]models.Building{
	"SCE": {
		Key:          "SCE",
		Name:         "Student Center East (SCE)",
		FullName:     "Student Center East",
		Abbreviation: "SCE",
		Address:      "750 S Halsted Street, Chicago, IL 60607",
		Lat:          41.87197, Lng: -87.64651,
		Categories:  []string{"dining", "services"},
		Photo:       "/photos/sce.jpg",
		Description: "The Student Center East is a hub of student activity, featuring dining options, study spaces, and various student services. It's a central gathering point for the UIC community.",
		Resources: []models.Resource{
			{Name: "Food Court", Description: "Multiple dining options"},
			{Name: "Wellness Center", Description: "Health & wellness services"},
			{Name: "Study Spaces", Description: "Individual and group study areas"},
		},
		Landmarks: []string{
			"Richard J. Daley Library - Main library, 3 min walk (North)",
			"Lecture Center A - Large lecture halls, 2 min walk (West)",
			"ARC - Recreation center, 4 min walk (East)",
		},
		Features: []string{
			"Large glass entrance with SCE signage",
			"Modern architectural design",
			"Multiple entry doors with accessibility features",
			"Located on Halsted Street",
		},
		Tips: "Look for the 'SCE' abbreviation on building signage and the modern glass entrance.",
	},
	"ARC": {
		Key:          "ARC",
		Name:         "Activities & Recreation Center (ARC)",
		FullName:     "Activities & Recreation Center",
		Abbreviation: "ARC",
		Address:      "828 S Wolcott Avenue, Chicago, IL 60612",
		Lat:          41.87014, Lng: -87.64326,
		Categories:  []string{"recreation"},
		Photo:       "/photos/arc.jpg",
		Description: "The ARC is UIC's premier fitness and recreation facility, offering a wide range of athletic facilities, fitness equipment, and recreational programs for students.",
		Resources: []models.Resource{
			{Name: "Fitness Center", Description: "State-of-the-art gym equipment"},
			{Name: "Swimming Pool", Description: "Olympic-size pool for recreation"},
			{Name: "Basketball Courts", Description: "Indoor courts available"},
			{Name: "Group Fitness Classes", Description: "Yoga, spin, and more"},
		},
		Landmarks: []string{
			"SCE - Student Center, 4 min walk (West)",
			"UIC Pavilion - Sports arena, 3 min walk (North)",
			"Student Residence Hall - Dorms, 2 min walk (South)",
		},
		Features: []string{
			"Large modern facility with glass windows",
			"ARC lettering on exterior",
			"Outdoor recreational fields nearby",
			"Multiple entrances with accessibility ramps",
		},
		Tips: "The ARC has a distinctive modern athletic facility appearance with large windows.",
	},
	"BSB": {
		Key:          "BSB",
		Name:         "Behavioral Sciences Building (BSB)",
		FullName:     "Behavioral Sciences Building",
		Abbreviation: "BSB",
		Address:      "1007 W Harrison Street, Chicago, IL 60607",
		Lat:          41.87443, Lng: -87.65177,
		Categories:  []string{"academic"},
		Photo:       "/photos/bsb.jpg",
		Description: "BSB houses the College of Liberal Arts and Sciences departments focused on psychology, sociology, and other behavioral sciences. Features classrooms, labs, and faculty offices.",
		Resources: []models.Resource{
			{Name: "Psychology Labs", Description: "Research facilities"},
			{Name: "Computer Labs", Description: "Student computing resources"},
			{Name: "Study Lounges", Description: "Quiet study areas"},
		},
		Landmarks: []string{
			"Student Center East - 3 min walk (North)",
			"Science & Engineering South - 5 min walk (East)",
			"University Hall - Admin building, 4 min walk (West)",
		},
		Features: []string{
			"Brick exterior with BSB signage",
			"Traditional academic building design",
			"Multiple floors with regular window pattern",
			"Located on Harrison Street",
		},
		Tips: "BSB has a more traditional academic building appearance with brick construction.",
	},
	"LIB": {
		Key:          "LIB",
		Name:         "Richard J. Daley Library",
		FullName:     "Richard J. Daley Library",
		Abbreviation: "LIB",
		Address:      "801 S Morgan Street, Chicago, IL 60607",
		Lat:          41.87190, Lng: -87.64967,
		Categories:  []string{"academic", "services"},
		Photo:       "/photos/lib.jpg",
		Description: "UIC's main library is a massive brutalist structure that serves as the university's primary research library, offering extensive collections, study spaces, and research assistance.",
		Resources: []models.Resource{
			{Name: "Research Collections", Description: "Extensive book and journal holdings"},
			{Name: "Special Collections", Description: "Rare books and archives"},
			{Name: "Group Study Rooms", Description: "Reservable study spaces"},
			{Name: "Research Assistance", Description: "Librarian help desk"},
		},
		Landmarks: []string{
			"Student Center East - 3 min walk (South)",
			"University Hall - 2 min walk (West)",
			"Lecture Center - Adjacent building",
		},
		Features: []string{
			"Iconic brutalist concrete architecture",
			"Very large, imposing structure",
			"Distinctive angular design",
			"Visible from across campus",
		},
		Tips: "The library's unique brutalist architecture makes it one of the most recognizable buildings on campus.",
	},
	"SES": {
		Key:          "SES",
		Name:         "Science & Engineering South (SES)",
		FullName:     "Science & Engineering South",
		Abbreviation: "SES",
		Address:      "845 W Taylor Street, Chicago, IL 60607",
		Lat:          41.86998, Lng: -87.64862,
		Categories:  []string{"academic"},
		Photo:       "/photos/ses.jpg",
		Description: "SES is a modern facility housing laboratories, classrooms, and collaborative spaces for science and engineering students and faculty.",
		Resources: []models.Resource{
			{Name: "Engineering Labs", Description: "Specialized research labs"},
			{Name: "Maker Space", Description: "3D printing and prototyping"},
			{Name: "Computer Labs", Description: "High-performance computing"},
			{Name: "Study Areas", Description: "Collaborative workspaces"},
		},
		Landmarks: []string{
			"Science & Engineering Labs - Adjacent building",
			"Engineering Research Facility - 2 min walk (East)",
			"BSB - Behavioral Sciences, 5 min walk (West)",
		},
		Features: []string{
			"Modern glass and steel construction",
			"SES signage visible on building",
			"Contemporary architectural design",
			"Large windows throughout",
		},
		Tips: "SES features modern architecture with lots of glass, typical of newer science buildings.",
	},
	"UH": {
		Key:          "UH",
		Name:         "University Hall (UH)",
		FullName:     "University Hall",
		Abbreviation: "UH",
		Address:      "601 S Morgan Street, Chicago, IL 60607",
		Lat:          41.87458, Lng: -87.64948,
		Categories:  []string{"services"},
		Photo:       "/photos/uh.jpg",
		Description: "University Hall houses administrative offices including Admissions, Registrar, Financial Aid, and other student services. It's often the first stop for new students.",
		Resources: []models.Resource{
			{Name: "Admissions Office", Description: "Undergraduate admissions"},
			{Name: "Registrar", Description: "Course registration and records"},
			{Name: "Financial Aid", Description: "Student financial services"},
			{Name: "Student Services", Description: "Various administrative offices"},
		},
		Landmarks: []string{
			"Daley Library - 2 min walk (East)",
			"Student Center West - 3 min walk (South)",
			"Flames Statue - Iconic campus landmark nearby",
		},
		Features: []string{
			"Tall tower structure",
			"UH signage visible",
			"Administrative building appearance",
			"Central campus location",
		},
		Tips: "University Hall has a distinctive tall tower and is centrally located on campus.",
	},
	"TH": {
		Key:          "TH",
		Name:         "Taft Hall (TH)",
		FullName:     "Taft Hall",
		Abbreviation: "TH",
		Address:      "929 W Harrison Street, Chicago, IL 60607",
		Lat:          41.87394, Lng: -87.65095,
		Categories:  []string{"academic"},
		Photo:       "/photos/th.jpg",
		Description: "Taft Hall houses various academic departments and classrooms, serving as a key instructional building on campus.",
		Resources: []models.Resource{
			{Name: "Classrooms", Description: "General education courses"},
			{Name: "Faculty Offices", Description: "Office hours and meetings"},
			{Name: "Computer Lab", Description: "Student computing access"},
		},
		Landmarks: []string{
			"Grant Hall - Adjacent building (North)",
			"Burnham Hall - 1 min walk (South)",
			"Student Center East - 4 min walk (East)",
		},
		Features: []string{
			"Traditional academic building",
			"Brick construction",
			"Multiple stories",
			"TH signage on exterior",
		},
		Tips: "Taft Hall has classic university architecture with brick exterior.",
	},
	"LCA": {
		Key:          "LCA",
		Name:         "Lecture Center A (LCA)",
		FullName:     "Lecture Center A",
		Abbreviation: "LCA",
		Address:      "1000 S Morgan Street, Chicago, IL 60607",
		Lat:          41.87248, Lng: -87.64890,
		Categories:  []string{"academic"},
		Photo:       "/photos/lca.jpg",
		Description: "Lecture Center A contains large auditorium-style classrooms for introductory and general education courses.",
		Resources: []models.Resource{
			{Name: "Large Lecture Halls", Description: "100-300 seat auditoriums"},
			{Name: "Study Lounges", Description: "Between-class study space"},
		},
		Landmarks: []string{
			"Daley Library - Adjacent (South)",
			"Lecture Center D - Connected building",
			"Student Center East - 2 min walk (East)",
		},
		Features: []string{
			"Part of lecture center complex",
			"Large building with multiple entrances",
			"LCA signage",
			"Connected to library via skywalk",
		},
		Tips: "Lecture centers are interconnected buildings near the library.",
	},
}
