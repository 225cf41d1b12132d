package mockup

// Categories of documentation screenshots.
const (
	CategoryLogin    = "login"
	CategoryEmployee = "employee"
	CategoryAdmin    = "admin"
)

var defaultSpecs = [...]Spec{
	{"docs/screenshots/login/login-page.png", "Page de Connexion", "Saisissez vos identifiants pour accéder à ClockPilot", CategoryLogin},
	{"docs/screenshots/login/login-error.png", "Erreur de Connexion", "Identifiants incorrects - Vérifiez votre email et mot de passe", CategoryLogin},
	{"docs/screenshots/login/login-success.png", "Connexion Réussie", "Redirection vers votre tableau de bord...", CategoryLogin},

	{"docs/screenshots/employee/dashboard.png", "Tableau de Bord Employé", "Vue d'ensemble de votre activité et planning", CategoryEmployee},
	{"docs/screenshots/employee/planning-month.png", "Planning Mensuel", "Consultez votre planning sur un mois complet", CategoryEmployee},
	{"docs/screenshots/employee/time-tracking.png", "Pointage Temps Réel", "Enregistrez vos heures de travail en temps réel", CategoryEmployee},
	{"docs/screenshots/employee/manual-entry.png", "Saisie Manuelle", "Ajoutez des heures de travail manuellement", CategoryEmployee},
	{"docs/screenshots/employee/reports.png", "Rapports Personnels", "Analysez vos statistiques de travail", CategoryEmployee},
	{"docs/screenshots/employee/profile.png", "Profil Utilisateur", "Gérez vos informations personnelles et préférences", CategoryEmployee},

	{"docs/screenshots/admin/dashboard.png", "Tableau de Bord Admin", "Vue d'ensemble de l'activité de l'entreprise", CategoryAdmin},
	{"docs/screenshots/admin/employees-list.png", "Gestion des Employés", "Consultez et administrez votre équipe", CategoryAdmin},
	{"docs/screenshots/admin/employee-create.png", "Création d'Employé", "Ajoutez un nouveau membre à l'équipe", CategoryAdmin},
	{"docs/screenshots/admin/validation.png", "Validation des Heures", "Approuvez ou rejetez les heures saisies", CategoryAdmin},
	{"docs/screenshots/admin/export-dialog.png", "Export de Données", "Générez des rapports personnalisés", CategoryAdmin},
}

// DefaultSpecs returns the documentation screenshots in generation order.
// The slice is a fresh copy.
func DefaultSpecs() []Spec {
	specs := make([]Spec, len(defaultSpecs))
	copy(specs, defaultSpecs[:])
	return specs
}
