package catalog

import (
	"time"

	"github.com/learnhub/learnhub-api/internal/models"
)

var seedCategories = []models.CourseCategory{
	{ID: "programming", Name: "Programming", Icon: "Code", Description: "Master programming languages and development"},
	{ID: "web-dev", Name: "Web Development", Icon: "Globe", Description: "Build modern web applications"},
	{ID: "data-science", Name: "Data Science", Icon: "BarChart3", Description: "Analyze data and build ML models"},
	{ID: "cybersecurity", Name: "Cybersecurity", Icon: "Shield", Description: "Protect systems and networks"},
	{ID: "mobile-dev", Name: "Mobile Development", Icon: "Smartphone", Description: "Create native and cross-platform apps"},
	{ID: "cloud", Name: "Cloud Computing", Icon: "Cloud", Description: "Deploy and scale applications"},
	{ID: "ai-ml", Name: "AI & Machine Learning", Icon: "Brain", Description: "Build intelligent systems"},
	{ID: "databases", Name: "Databases", Icon: "Database", Description: "Design and manage data systems"},
}

var seedCourses = []models.Course{
	{
		ID:               "1",
		Title:            "Complete JavaScript Mastery",
		Description:      "Master JavaScript from fundamentals to advanced concepts including ES6+, async programming, and modern development practices.",
		Category:         "programming",
		Level:            models.LevelIntermediate,
		Duration:         "12 weeks",
		Price:            299,
		Rating:           4.8,
		StudentsEnrolled: 15420,
		Instructor:       "Dr. Sarah Johnson",
		Image:            "https://images.pexels.com/photos/11035380/pexels-photo-11035380.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"JavaScript", "ES6+", "Async Programming", "DOM Manipulation", "API Integration"},
		Curriculum:       []string{"JavaScript Fundamentals", "Functions and Scope", "Objects and Arrays", "ES6+ Features", "Asynchronous JavaScript", "DOM Manipulation", "API Integration", "Error Handling", "Testing with Jest", "Modern JavaScript Tools"},
		Prerequisites:    []string{"Basic HTML", "CSS Knowledge", "Programming Basics"},
	},
	{
		ID:               "2",
		Title:            "Full-Stack React Development",
		Description:      "Build modern web applications with React, Node.js, and MongoDB. Learn the complete MERN stack development process.",
		Category:         "web-dev",
		Level:            models.LevelAdvanced,
		Duration:         "16 weeks",
		Price:            449,
		Rating:           4.9,
		StudentsEnrolled: 8900,
		Instructor:       "Michael Chen",
		Image:            "https://images.pexels.com/photos/11035471/pexels-photo-11035471.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"React", "Node.js", "MongoDB", "Express", "Redux", "Authentication"},
		Curriculum:       []string{"React Fundamentals", "Component Architecture", "State Management with Redux", "Node.js and Express", "MongoDB Integration", "Authentication and Security", "Testing and Deployment"},
		Prerequisites:    []string{"JavaScript Proficiency", "HTML/CSS", "Git Basics"},
	},
	{
		ID:               "3",
		Title:            "Python for Data Science",
		Description:      "Learn Python programming for data analysis, visualization, and machine learning. Master pandas, NumPy, and scikit-learn.",
		Category:         "data-science",
		Level:            models.LevelIntermediate,
		Duration:         "14 weeks",
		Price:            399,
		Rating:           4.7,
		StudentsEnrolled: 12300,
		Instructor:       "Dr. Emily Rodriguez",
		Image:            "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"Python", "Pandas", "NumPy", "Matplotlib", "Scikit-learn", "Jupyter"},
		Curriculum:       []string{"Python Fundamentals", "Data Manipulation with Pandas", "Numerical Computing with NumPy", "Data Visualization", "Statistical Analysis", "Machine Learning Basics", "Capstone Project"},
		Prerequisites:    []string{"Basic Programming", "Mathematics Fundamentals"},
	},
	{
		ID:               "4",
		Title:            "Ethical Hacking & Penetration Testing",
		Description:      "Learn cybersecurity fundamentals, ethical hacking techniques, and penetration testing methodologies to secure systems.",
		Category:         "cybersecurity",
		Level:            models.LevelAdvanced,
		Duration:         "18 weeks",
		Price:            599,
		Rating:           4.8,
		StudentsEnrolled: 6750,
		Instructor:       "James Wilson",
		Image:            "https://images.pexels.com/photos/5380664/pexels-photo-5380664.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"Penetration Testing", "Network Security", "Vulnerability Assessment", "Kali Linux", "Social Engineering"},
		Curriculum:       []string{"Security Fundamentals", "Reconnaissance Techniques", "Vulnerability Scanning", "Exploitation Basics", "Web Application Security", "Reporting and Remediation"},
		Prerequisites:    []string{"Networking Fundamentals", "Linux Basics", "Security Awareness"},
	},
	{
		ID:               "5",
		Title:            "React Native Mobile Development",
		Description:      "Build cross-platform mobile applications using React Native. Learn iOS and Android app development with a single codebase.",
		Category:         "mobile-dev",
		Level:            models.LevelIntermediate,
		Duration:         "12 weeks",
		Price:            379,
		Rating:           4.6,
		StudentsEnrolled: 9200,
		Instructor:       "Alex Thompson",
		Image:            "https://images.pexels.com/photos/4144923/pexels-photo-4144923.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"React Native", "Mobile UI/UX", "Navigation", "State Management", "Native Modules"},
		Curriculum:       []string{"React Native Setup", "Core Components", "Navigation Patterns", "Device APIs", "App Store Deployment"},
		Prerequisites:    []string{"JavaScript Proficiency", "React Basics"},
	},
	{
		ID:               "6",
		Title:            "AWS Cloud Architecture",
		Description:      "Master Amazon Web Services and learn to design, deploy, and manage scalable cloud infrastructure and applications.",
		Category:         "cloud",
		Level:            models.LevelAdvanced,
		Duration:         "20 weeks",
		Price:            649,
		Rating:           4.9,
		StudentsEnrolled: 7890,
		Instructor:       "Dr. Robert Kim",
		Image:            "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"AWS Services", "Cloud Architecture", "DevOps", "Containerization", "Serverless"},
		Curriculum:       []string{"AWS Fundamentals", "Compute and Storage", "Networking and Security", "Infrastructure as Code", "Serverless Architectures", "Cost Optimization"},
		Prerequisites:    []string{"Linux Basics", "Networking Fundamentals"},
	},
	{
		ID:               "7",
		Title:            "Machine Learning with TensorFlow",
		Description:      "Build and deploy machine learning models using TensorFlow. Learn deep learning, neural networks, and AI fundamentals.",
		Category:         "ai-ml",
		Level:            models.LevelAdvanced,
		Duration:         "16 weeks",
		Price:            549,
		Rating:           4.8,
		StudentsEnrolled: 5640,
		Instructor:       "Dr. Maria Santos",
		Image:            "https://images.pexels.com/photos/8386434/pexels-photo-8386434.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"TensorFlow", "Deep Learning", "Neural Networks", "Computer Vision", "NLP"},
		Curriculum:       []string{"ML Foundations", "TensorFlow Basics", "Neural Network Design", "Convolutional Networks", "Sequence Models", "Model Deployment"},
		Prerequisites:    []string{"Python Proficiency", "Linear Algebra", "Statistics"},
	},
	{
		ID:               "8",
		Title:            "PostgreSQL Database Design",
		Description:      "Master advanced database design, optimization, and administration with PostgreSQL. Learn complex queries and performance tuning.",
		Category:         "databases",
		Level:            models.LevelIntermediate,
		Duration:         "10 weeks",
		Price:            329,
		Rating:           4.7,
		StudentsEnrolled: 4320,
		Instructor:       "David Park",
		Image:            "https://images.pexels.com/photos/1181675/pexels-photo-1181675.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Skills:           []string{"PostgreSQL", "Database Design", "Query Optimization", "Performance Tuning", "Backup & Recovery"},
		Curriculum:       []string{"Relational Modeling", "Advanced SQL", "Indexing Strategies", "Query Planning", "Administration and Backups"},
		Prerequisites:    []string{"SQL Basics"},
	},
}

var seedPaths = []models.LearningPath{
	{
		ID:               "fullstack-web-dev",
		Title:            "Full-Stack Web Developer",
		Description:      "Master both frontend and backend development with modern technologies. Build complete web applications from scratch.",
		Duration:         "6 months",
		Difficulty:       models.LevelIntermediate,
		CourseIDs:        []string{"1", "2", "8"},
		Skills:           []string{"JavaScript", "React", "Node.js", "PostgreSQL", "API Development", "Authentication"},
		Image:            "https://images.pexels.com/photos/11035380/pexels-photo-11035380.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Price:            899,
		StudentsEnrolled: 12500,
		Rating:           4.9,
		Instructor:       "Dr. Sarah Johnson",
		Prerequisites:    []string{"Basic HTML/CSS", "Programming fundamentals"},
		Outcomes:         []string{"Build full-stack web applications", "Master modern JavaScript frameworks", "Design and implement RESTful APIs", "Deploy applications to production", "Implement user authentication systems"},
	},
	{
		ID:               "data-scientist",
		Title:            "Data Science & AI Specialist",
		Description:      "Transform data into insights with Python, machine learning, and AI. Master the complete data science pipeline.",
		Duration:         "8 months",
		Difficulty:       models.LevelAdvanced,
		CourseIDs:        []string{"3", "7"},
		Skills:           []string{"Python", "Machine Learning", "Data Analysis", "TensorFlow", "Statistics", "AI"},
		Image:            "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Price:            1299,
		StudentsEnrolled: 8900,
		Rating:           4.8,
		Instructor:       "Dr. Emily Rodriguez",
		Prerequisites:    []string{"Mathematics & Statistics", "Basic Python knowledge"},
		Outcomes:         []string{"Build machine learning models", "Perform advanced data analysis", "Create AI-powered applications", "Master data visualization", "Deploy ML models to production"},
	},
	{
		ID:               "cybersecurity-expert",
		Title:            "Cybersecurity Expert",
		Description:      "Protect organizations from cyber threats. Learn ethical hacking, penetration testing, and security architecture.",
		Duration:         "10 months",
		Difficulty:       models.LevelAdvanced,
		CourseIDs:        []string{"4"},
		Skills:           []string{"Penetration Testing", "Network Security", "Incident Response", "Risk Assessment", "Compliance"},
		Image:            "https://images.pexels.com/photos/5380664/pexels-photo-5380664.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Price:            1599,
		StudentsEnrolled: 5600,
		Rating:           4.9,
		Instructor:       "James Wilson",
		Prerequisites:    []string{"Networking fundamentals", "Linux basics", "Security awareness"},
		Outcomes:         []string{"Conduct professional penetration tests", "Design secure network architectures", "Respond to security incidents", "Implement compliance frameworks", "Lead cybersecurity initiatives"},
	},
	{
		ID:               "mobile-app-developer",
		Title:            "Mobile App Developer",
		Description:      "Create stunning mobile applications for iOS and Android. Master cross-platform development with React Native.",
		Duration:         "5 months",
		Difficulty:       models.LevelIntermediate,
		CourseIDs:        []string{"5"},
		Skills:           []string{"React Native", "Mobile UI/UX", "App Store Deployment", "Push Notifications", "Mobile APIs"},
		Image:            "https://images.pexels.com/photos/4144923/pexels-photo-4144923.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Price:            799,
		StudentsEnrolled: 9800,
		Rating:           4.7,
		Instructor:       "Alex Thompson",
		Prerequisites:    []string{"JavaScript proficiency", "React basics"},
		Outcomes:         []string{"Build cross-platform mobile apps", "Publish apps to app stores", "Implement mobile-specific features", "Optimize app performance", "Monetize mobile applications"},
	},
	{
		ID:               "cloud-architect",
		Title:            "Cloud Solutions Architect",
		Description:      "Design and implement scalable cloud infrastructure. Master AWS, DevOps, and modern deployment strategies.",
		Duration:         "7 months",
		Difficulty:       models.LevelAdvanced,
		CourseIDs:        []string{"6"},
		Skills:           []string{"AWS", "DevOps", "Kubernetes", "Terraform", "CI/CD", "Microservices"},
		Image:            "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Price:            1199,
		StudentsEnrolled: 6700,
		Rating:           4.8,
		Instructor:       "Dr. Robert Kim",
		Prerequisites:    []string{"Linux basics", "Networking fundamentals"},
		Outcomes:         []string{"Design cloud architectures", "Automate infrastructure deployment", "Implement CI/CD pipelines", "Operate containerized workloads", "Optimize cloud costs"},
	},
}

var seedInstructors = []models.Instructor{
	{
		ID:            "sarah-johnson",
		Name:          "Dr. Sarah Johnson",
		Title:         "Senior JavaScript Engineer",
		Bio:           "Former Google engineer with a PhD in Computer Science. Passionate about teaching modern JavaScript and web technologies.",
		Avatar:        "https://images.pexels.com/photos/3184405/pexels-photo-3184405.jpeg?auto=compress&cs=tinysrgb&w=400",
		Expertise:     []string{"JavaScript", "React", "Node.js", "Web Performance"},
		Experience:    "12 years",
		Rating:        4.9,
		StudentsCount: 45000,
		CoursesCount:  8,
	},
	{
		ID:            "emily-rodriguez",
		Name:          "Dr. Emily Rodriguez",
		Title:         "Data Science Lead",
		Bio:           "Data science practitioner and educator who has built ML pipelines for Fortune 500 companies.",
		Avatar:        "https://images.pexels.com/photos/3182812/pexels-photo-3182812.jpeg?auto=compress&cs=tinysrgb&w=400",
		Expertise:     []string{"Python", "Machine Learning", "Statistics", "Data Visualization"},
		Experience:    "10 years",
		Rating:        4.8,
		StudentsCount: 32000,
		CoursesCount:  6,
	},
	{
		ID:            "james-wilson",
		Name:          "James Wilson",
		Title:         "Security Consultant",
		Bio:           "Certified ethical hacker leading red-team engagements for banks and government agencies.",
		Avatar:        "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=400",
		Expertise:     []string{"Penetration Testing", "Network Security", "Incident Response"},
		Experience:    "15 years",
		Rating:        4.8,
		StudentsCount: 18500,
		CoursesCount:  4,
	},
	{
		ID:            "robert-kim",
		Name:          "Dr. Robert Kim",
		Title:         "Principal Cloud Architect",
		Bio:           "AWS-certified architect who has migrated hundreds of workloads to the cloud.",
		Avatar:        "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=400",
		Expertise:     []string{"AWS", "DevOps", "Kubernetes", "Serverless"},
		Experience:    "14 years",
		Rating:        4.9,
		StudentsCount: 21000,
		CoursesCount:  5,
	},
}

var seedPosts = []models.CommunityPost{
	{
		ID:          "post-1",
		Title:       "Just completed the JavaScript Mastery course!",
		Content:     "After 12 weeks of hard work I finally finished. The async programming section alone was worth the price. Happy to answer questions about the workload.",
		AuthorName:  "Priya Natarajan",
		AuthorLevel: "Intermediate",
		Category:    models.PostShowcase,
		Tags:        []string{"javascript", "milestone"},
		Replies:     14,
		CreatedAt:   time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:          "post-2",
		Title:       "Help: pandas merge producing duplicate rows",
		Content:     "Working through week 5 of Python for Data Science and my merge keeps duplicating rows. Anyone hit this in the exercises?",
		AuthorName:  "Tom Becker",
		AuthorLevel: "Beginner",
		Category:    models.PostHelp,
		Tags:        []string{"python", "pandas", "data-science"},
		Replies:     6,
		CreatedAt:   time.Date(2025, time.March, 10, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:          "post-3",
		Title:       "Which learning path for a career switch into security?",
		Content:     "I have five years of sysadmin experience and want to move into offensive security. Is the Cybersecurity Expert path enough on its own?",
		AuthorName:  "Lena Osei",
		AuthorLevel: "Intermediate",
		Category:    models.PostDiscussion,
		Tags:        []string{"cybersecurity", "career"},
		Replies:     22,
		CreatedAt:   time.Date(2025, time.March, 17, 19, 45, 0, 0, time.UTC),
	},
	{
		ID:          "post-4",
		Title:       "New AWS course content dropped",
		Content:     "The cloud architecture course just got a serverless module refresh. The Step Functions lab is excellent.",
		AuthorName:  "Marcus Lee",
		AuthorLevel: "Advanced",
		Category:    models.PostNews,
		Tags:        []string{"aws", "cloud", "update"},
		Replies:     3,
		CreatedAt:   time.Date(2025, time.March, 21, 11, 0, 0, 0, time.UTC),
	},
}
