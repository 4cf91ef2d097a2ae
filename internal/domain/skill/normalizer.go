package skill

import "strings"

// aliases maps lower-cased skill variants to their canonical form.
// Keys must be lower-case; canonical values keep their display casing.
var aliases = map[string]string{
	// SQL variants
	"mysql":      "SQL",
	"postgresql": "SQL",
	"postgres":   "SQL",
	"oracle":     "SQL",
	"mssql":      "SQL",
	"sql server": "SQL",
	"mariadb":    "SQL",

	// Deep Learning frameworks
	"tensorflow": "Deep Learning",
	"pytorch":    "Deep Learning",
	"keras":      "Deep Learning",

	// Frontend frameworks
	"react":   "Frontend Framework",
	"vue":     "Frontend Framework",
	"angular": "Frontend Framework",
	"svelte":  "Frontend Framework",

	// Cloud platforms
	"aws":             "Cloud Platform",
	"gcp":             "Cloud Platform",
	"google cloud":    "Cloud Platform",
	"azure":           "Cloud Platform",
	"microsoft azure": "Cloud Platform",

	// Container tools
	"docker":     "Container",
	"kubernetes": "Container",
	"k8s":        "Container",

	// NoSQL databases
	"mongodb":   "NoSQL",
	"cassandra": "NoSQL",
	"dynamodb":  "NoSQL",
	"redis":     "NoSQL",

	// Machine Learning libraries
	"scikit-learn": "Machine Learning",
	"scikit_learn": "Machine Learning",
	"sklearn":      "Machine Learning",
	"xgboost":      "Machine Learning",
	"lightgbm":     "Machine Learning",

	// Data Processing
	"pandas": "Data Processing",
	"numpy":  "Data Processing",
	"scipy":  "Data Processing",

	// API Frameworks
	"fastapi": "API Framework",
	"flask":   "API Framework",
	"django":  "API Framework",
	"express": "API Framework",
	"node.js": "API Framework",
	"nodejs":  "API Framework",
}

// Normalize resolves a free-text skill to its canonical form. Lookup is
// case-insensitive; unknown skills pass through with their original casing,
// which downstream set comparisons depend on.
func Normalize(s string) string {
	if canonical, ok := aliases[strings.ToLower(s)]; ok {
		return canonical
	}
	return s
}
