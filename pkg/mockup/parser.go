// parser.go — Sample manifest for docshots init.
package mockup

// ExampleManifest returns a sample manifest.json.
func ExampleManifest() string {
	return `{
  "baseFontSize": 24,
  "fonts": ["/System/Library/Fonts/Helvetica.ttc", "arial.ttf", "go", "default"],
  "theme": {
    "header": "#3b82f6",
    "accent": "#ef4444"
  },
  "specs": [
    {
      "path": "docs/screenshots/login/login-page.png",
      "title": "Page de Connexion",
      "description": "Saisissez vos identifiants pour accéder à ClockPilot",
      "category": "login"
    },
    {
      "path": "docs/screenshots/employee/dashboard.png",
      "title": "Tableau de Bord Employé",
      "description": "Vue d'ensemble de votre activité et planning",
      "category": "employee"
    }
  ]
}
`
}
