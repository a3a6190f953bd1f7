package lexicon

// Default returns the built-in lexicon used when no external file is
// configured. Kept deliberately conservative: entries here feed word-boundary
// matching, so every alias must be unambiguous on its own.
func Default() *Lexicon {
	lex := &Lexicon{
		Version: "2024.1",
		Synonyms: map[string][]string{
			"javascript": {"js", "ecmascript"},
			"typescript": {"ts"},
			"python":     {"python3", "py"},
			"java":       {"openjdk"},
			"golang":     {"go"},
			"react":      {"react.js", "reactjs"},
			"angular":    {"angularjs"},
			"vue":        {"vue.js", "vuejs"},
			"node.js":    {"nodejs", "node"},
			"express":    {"express.js", "expressjs"},
			"postgresql": {"postgres", "psql"},
			"mongodb":    {"mongo"},
			"mysql":      {},
			"redis":      {},
			"aws":        {"amazon web services"},
			"gcp":        {"google cloud", "google cloud platform"},
			"azure":      {"microsoft azure"},
			"docker":     {"containerization"},
			"kubernetes": {"k8s"},
			"terraform":  {},
			"ci/cd":      {"continuous integration", "continuous deployment"},
			"git":        {"version control"},
			"graphql":    {},
			"rest":       {"restful", "rest api"},
			"machine learning": {"ml"},
		},
		Technologies: []string{
			"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go",
			"Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "SQL",
			"React", "Angular", "Vue", "Node.js", "Express", "Django",
			"Flask", "FastAPI", "Spring", "Rails", "Laravel", "Next.js",
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite",
			"Elasticsearch", "Cassandra", "DynamoDB",
			"AWS", "Azure", "GCP", "Heroku", "DigitalOcean",
			"Docker", "Kubernetes", "Terraform", "Jenkins", "Ansible",
			"Git", "GraphQL", "Kafka", "RabbitMQ",
		},
		Certifications: []string{
			"AWS Certified Solutions Architect", "AWS Certified Developer",
			"Certified Kubernetes Administrator", "CKA", "CKAD",
			"Google Cloud Professional", "Azure Administrator",
			"PMP", "CISSP", "CompTIA Security+", "Scrum Master", "CSM",
		},
		SoftSkills: []string{
			"communication", "leadership", "teamwork", "collaboration",
			"problem solving", "critical thinking", "time management",
			"mentoring", "adaptability", "attention to detail",
			"stakeholder management", "cross-functional",
		},
		Keywords: []string{
			"agile", "scrum", "kanban", "microservices", "distributed systems",
			"scalability", "cloud native", "devops", "observability",
			"data pipeline", "etl", "api design", "test driven development",
			"code review", "saas", "b2b", "fintech", "e-commerce",
			"healthcare", "machine learning", "security", "compliance",
		},
		ActionVerbs: []string{
			"achieved", "built", "created", "delivered", "designed",
			"developed", "drove", "implemented", "improved", "launched",
			"led", "managed", "optimized", "reduced", "scaled", "shipped",
		},
	}

	lex.buildIndex()
	return lex
}
