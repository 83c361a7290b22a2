// Package types provides type definitions for structured data used throughout the application system.
package types

// Role identifies one of the open positions candidates can apply for.
type Role string

// Supported roles. The set is fixed; requests carrying any other value are rejected.
const (
	RoleFrontendEngineer  Role = "frontend-engineer"
	RoleProductDesigner   Role = "product-designer"
	RoleBackendEngineer   Role = "backend-engineer"
	RoleFullstackEngineer Role = "fullstack-engineer"
	RoleDataScientist     Role = "data-scientist"
	RoleDevOpsEngineer    Role = "devops-engineer"
	RoleProductManager    Role = "product-manager"
	RoleUIUXDesigner      Role = "ui-ux-designer"
	RoleMobileDeveloper   Role = "mobile-developer"
	RoleQAEngineer        Role = "qa-engineer"
)

// Roles lists every supported role in display order.
var Roles = []Role{
	RoleFrontendEngineer,
	RoleProductDesigner,
	RoleBackendEngineer,
	RoleFullstackEngineer,
	RoleDataScientist,
	RoleDevOpsEngineer,
	RoleProductManager,
	RoleUIUXDesigner,
	RoleMobileDeveloper,
	RoleQAEngineer,
}

// RoleLabels maps role identifiers to their human-readable titles.
var RoleLabels = map[Role]string{
	RoleFrontendEngineer:  "Frontend Engineer",
	RoleProductDesigner:   "Product Designer",
	RoleBackendEngineer:   "Backend Engineer",
	RoleFullstackEngineer: "Full Stack Engineer",
	RoleDataScientist:     "Data Scientist",
	RoleDevOpsEngineer:    "DevOps Engineer",
	RoleProductManager:    "Product Manager",
	RoleUIUXDesigner:      "UI/UX Designer",
	RoleMobileDeveloper:   "Mobile Developer",
	RoleQAEngineer:        "QA Engineer",
}

// IsValid reports whether r is one of the supported roles.
func (r Role) IsValid() bool {
	_, ok := RoleLabels[r]
	return ok
}

// Title returns the human-readable title for the role, falling back to the raw identifier.
func (r Role) Title() string {
	if label, ok := RoleLabels[r]; ok {
		return label
	}
	return string(r)
}

// RoleContext carries the static per-role description used to steer question generation.
type RoleContext struct {
	Focus            string
	Skills           string
	Responsibilities string
}

// RoleContexts holds the generation context for every supported role.
var RoleContexts = map[Role]RoleContext{
	RoleFrontendEngineer: {
		Focus:            "frontend development, React, TypeScript, CSS, JavaScript, web technologies, user interfaces",
		Skills:           "HTML, CSS, JavaScript, React, Vue, Angular, TypeScript, responsive design, accessibility, performance optimization",
		Responsibilities: "building user interfaces, implementing designs, optimizing performance, ensuring cross-browser compatibility, collaborating with designers",
	},
	RoleProductDesigner: {
		Focus:            "user experience design, user interface design, design systems, user research, prototyping",
		Skills:           "Figma, Sketch, Adobe Creative Suite, prototyping, user research, design systems, wireframing, usability testing",
		Responsibilities: "creating user-centered designs, conducting user research, building design systems, collaborating with developers, testing designs",
	},
	RoleBackendEngineer: {
		Focus:            "server-side development, APIs, databases, system architecture, performance optimization, security",
		Skills:           "Node.js, Python, Java, Go, SQL, NoSQL, REST APIs, GraphQL, microservices, cloud platforms",
		Responsibilities: "building scalable backend systems, designing APIs, database optimization, ensuring security, system monitoring",
	},
	RoleFullstackEngineer: {
		Focus:            "full-stack development, frontend and backend integration, system architecture, end-to-end development",
		Skills:           "JavaScript, TypeScript, React, Node.js, databases, cloud platforms, DevOps, system design",
		Responsibilities: "developing complete applications, integrating frontend and backend, system architecture, deployment and monitoring",
	},
	RoleDataScientist: {
		Focus:            "data analysis, machine learning, statistical modeling, data visualization, predictive analytics",
		Skills:           "Python, R, SQL, pandas, scikit-learn, TensorFlow, PyTorch, Jupyter, data visualization, statistics",
		Responsibilities: "analyzing complex datasets, building ML models, creating insights, data visualization, statistical analysis",
	},
	RoleDevOpsEngineer: {
		Focus:            "infrastructure automation, CI/CD, cloud platforms, monitoring, containerization, deployment",
		Skills:           "Docker, Kubernetes, AWS, Azure, GCP, Jenkins, GitLab CI, Terraform, monitoring tools, scripting",
		Responsibilities: "automating deployments, managing infrastructure, ensuring system reliability, monitoring and alerting",
	},
	RoleProductManager: {
		Focus:            "product strategy, user research, roadmap planning, stakeholder management, data-driven decisions",
		Skills:           "product strategy, user research, analytics, roadmap planning, stakeholder communication, agile methodologies",
		Responsibilities: "defining product vision, managing roadmaps, coordinating with teams, analyzing user feedback, making data-driven decisions",
	},
	RoleUIUXDesigner: {
		Focus:            "user interface design, user experience research, interaction design, usability testing, design systems",
		Skills:           "Figma, Sketch, Adobe XD, prototyping, user research, usability testing, design systems, interaction design",
		Responsibilities: "creating intuitive user interfaces, conducting user research, prototyping, usability testing, maintaining design consistency",
	},
	RoleMobileDeveloper: {
		Focus:            "mobile app development, iOS, Android, cross-platform development, mobile UI/UX, app store optimization",
		Skills:           "Swift, Kotlin, React Native, Flutter, Xamarin, mobile UI design, app store guidelines, mobile testing",
		Responsibilities: "developing mobile applications, ensuring cross-platform compatibility, optimizing performance, following platform guidelines",
	},
	RoleQAEngineer: {
		Focus:            "quality assurance, test automation, manual testing, bug tracking, test planning, quality processes",
		Skills:           "test automation, Selenium, Jest, Cypress, manual testing, bug tracking, test planning, quality metrics",
		Responsibilities: "ensuring software quality, creating test plans, automating tests, identifying bugs, improving quality processes",
	},
}
