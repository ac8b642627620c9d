package models

// Course is immutable reference data describing a purchasable course.
type Course struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Category         string        `json:"category"`
	Level            LearningLevel `json:"level"`
	Duration         string        `json:"duration"`
	Price            float64       `json:"price"`
	Rating           float64       `json:"rating"`
	StudentsEnrolled int           `json:"students_enrolled"`
	Instructor       string        `json:"instructor"`
	Image            string        `json:"image"`
	Skills           []string      `json:"skills"`
	Curriculum       []string      `json:"curriculum"`
	Prerequisites    []string      `json:"prerequisites"`
}

// CourseCategory groups courses for browsing.
type CourseCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// LearningPath bundles an ordered sequence of courses.
type LearningPath struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Duration         string        `json:"duration"`
	Difficulty       LearningLevel `json:"difficulty"`
	CourseIDs        []string      `json:"course_ids"`
	Skills           []string      `json:"skills"`
	Image            string        `json:"image"`
	Price            float64       `json:"price"`
	StudentsEnrolled int           `json:"students_enrolled"`
	Rating           float64       `json:"rating"`
	Instructor       string        `json:"instructor"`
	Prerequisites    []string      `json:"prerequisites"`
	Outcomes         []string      `json:"outcomes"`
}

// LearningPathDetail enriches a path with its resolved courses.
// Course ids that do not resolve in the catalog are dropped.
type LearningPathDetail struct {
	LearningPath
	Courses []Course `json:"courses"`
}

// Instructor is static directory data for the instructors page.
type Instructor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Bio           string   `json:"bio"`
	Avatar        string   `json:"avatar"`
	Expertise     []string `json:"expertise"`
	Experience    string   `json:"experience"`
	Rating        float64  `json:"rating"`
	StudentsCount int      `json:"students_count"`
	CoursesCount  int      `json:"courses_count"`
}

// FilterCriteria is the transient filter state for course browsing.
// Category and SearchTerm treat the empty string as "no constraint";
// Level uses the "All Levels" sentinel.
type FilterCriteria struct {
	Category   string
	Level      string
	SearchTerm string
}
