package i18n

import "github.com/verte-zerg/aetheris/internal/model"

// UI string keys.
const (
	KeyDashboard   = "dashboard"
	KeyNeuroMap    = "neuroMap"
	KeyMindMeld    = "mindMeld"
	KeyVisionLab   = "visionLab"
	KeyQuantumQuiz = "quantumQuiz"
	KeyNexusChat   = "nexusChat"
	KeyCosmosLearn = "cosmosLearn"
	KeyIdeaVault   = "ideaVault"
	KeyMathPath    = "mathPath"
	KeySkillForge  = "skillForge"
	KeyCodeNexus   = "codeNexus"

	KeySectionCommand = "sectionCommand"
	KeySectionAcademy = "sectionAcademy"
	KeySectionTools   = "sectionTools"

	KeyLanguage      = "language"
	KeySelectRegion  = "selectRegion"
	KeyFocus         = "focus"
	KeyPause         = "pause"
	KeyLogOut        = "logOut"
	KeySignUpToSave  = "signUpToSave"
	KeyConfirmLogout = "confirmLogout"
	KeyConfirmSignup = "confirmSignup"
	KeyWelcome       = "welcome"
	KeyLevel         = "level"
	KeySessions      = "sessions"
	KeyNodes         = "nodes"
	KeyMinutes       = "minutes"
	KeyQuizScore     = "quizScore"
	KeyWeekly        = "weeklyActivity"
	KeyNextLevel     = "nextLevel"

	KeySignIn        = "signIn"
	KeySignUp        = "signUp"
	KeyEmail         = "email"
	KeyPassword      = "password"
	KeyName          = "name"
	KeyContinueGuest = "continueGuest"
	KeySigningIn     = "signingIn"
	KeyAuthHelp      = "authHelp"
)

var catalog = map[model.LanguageCode]map[string]string{
	model.LangEnglish: {
		KeyDashboard:   "Dashboard",
		KeyNeuroMap:    "NeuroMap",
		KeyMindMeld:    "MindMeld",
		KeyVisionLab:   "Vision Lab",
		KeyQuantumQuiz: "Quantum Quiz",
		KeyNexusChat:   "Nexus Chat",
		KeyCosmosLearn: "Cosmos Learn",
		KeyIdeaVault:   "Idea Vault",
		KeyMathPath:    "Math Path",
		KeySkillForge:  "Skill Forge",
		KeyCodeNexus:   "Code Nexus",

		KeySectionCommand: "Command",
		KeySectionAcademy: "Academy",
		KeySectionTools:   "Neural Tools",

		KeyLanguage:      "Language",
		KeySelectRegion:  "Select Region",
		KeyFocus:         "FOCUS",
		KeyPause:         "PAUSE",
		KeyLogOut:        "Log Out",
		KeySignUpToSave:  "Sign Up to Save",
		KeyConfirmLogout: "Are you sure you want to log out?",
		KeyConfirmSignup: "Sign up now to save your progress permanently?",
		KeyWelcome:       "Welcome back",
		KeyLevel:         "Level",
		KeySessions:      "Sessions",
		KeyNodes:         "Nodes explored",
		KeyMinutes:       "Minutes debated",
		KeyQuizScore:     "Quiz score",
		KeyWeekly:        "Weekly activity",
		KeyNextLevel:     "Next level",

		KeySignIn:        "Sign in",
		KeySignUp:        "Create account",
		KeyEmail:         "Email",
		KeyPassword:      "Password",
		KeyName:          "Name",
		KeyContinueGuest: "Continue as guest",
		KeySigningIn:     "Signing in...",
		KeyAuthHelp:      "tab: next field  ctrl+s: toggle sign up  ctrl+g: guest  enter: submit",
	},
	model.LangBengali: {
		KeyDashboard:   "ড্যাশবোর্ড",
		KeyNeuroMap:    "নিউরোম্যাপ",
		KeyMindMeld:    "মাইন্ডমেল্ড",
		KeyVisionLab:   "ভিশন ল্যাব",
		KeyQuantumQuiz: "কোয়ান্টাম কুইজ",
		KeyNexusChat:   "নেক্সাস চ্যাট",
		KeyCosmosLearn: "কসমস লার্ন",
		KeyIdeaVault:   "আইডিয়া ভল্ট",
		KeyMathPath:    "গণিত পথ",
		KeySkillForge:  "দক্ষতা ফোর্জ",
		KeyCodeNexus:   "কোড নেক্সাস",

		KeyLanguage:  "ভাষা",
		KeyLogOut:    "লগ আউট",
		KeyWelcome:   "স্বাগতম",
		KeyLevel:     "স্তর",
		KeySessions:  "সেশন",
		KeyQuizScore: "কুইজ স্কোর",
		KeyWeekly:    "সাপ্তাহিক কার্যকলাপ",
		KeySignIn:    "সাইন ইন",
		KeyEmail:     "ইমেইল",
		KeyPassword:  "পাসওয়ার্ড",
	},
	model.LangSpanish: {
		KeyDashboard:   "Panel",
		KeyNeuroMap:    "NeuroMapa",
		KeyMindMeld:    "MindMeld",
		KeyVisionLab:   "Laboratorio Visual",
		KeyQuantumQuiz: "Quiz Cuántico",
		KeyNexusChat:   "Chat Nexus",
		KeyCosmosLearn: "Aprender Cosmos",
		KeyIdeaVault:   "Bóveda de Ideas",
		KeyMathPath:    "Ruta Matemática",
		KeySkillForge:  "Forja de Habilidades",
		KeyCodeNexus:   "Código Nexus",

		KeySectionCommand: "Mando",
		KeySectionAcademy: "Academia",
		KeySectionTools:   "Herramientas Neurales",

		KeyLanguage:      "Idioma",
		KeySelectRegion:  "Seleccionar región",
		KeyFocus:         "ENFOQUE",
		KeyPause:         "PAUSA",
		KeyLogOut:        "Cerrar sesión",
		KeySignUpToSave:  "Regístrate para guardar",
		KeyConfirmLogout: "¿Seguro que quieres cerrar sesión?",
		KeyWelcome:       "Bienvenido de nuevo",
		KeyLevel:         "Nivel",
		KeySessions:      "Sesiones",
		KeyNodes:         "Nodos explorados",
		KeyMinutes:       "Minutos debatidos",
		KeyQuizScore:     "Puntuación",
		KeyWeekly:        "Actividad semanal",
		KeyNextLevel:     "Siguiente nivel",
		KeySignIn:        "Iniciar sesión",
		KeySignUp:        "Crear cuenta",
		KeyEmail:         "Correo",
		KeyPassword:      "Contraseña",
		KeyName:          "Nombre",
		KeyContinueGuest: "Continuar como invitado",
		KeySigningIn:     "Iniciando sesión...",
	},
	model.LangFrench: {
		KeyDashboard:   "Tableau de bord",
		KeyNeuroMap:    "NeuroCarte",
		KeyMindMeld:    "MindMeld",
		KeyVisionLab:   "Labo Vision",
		KeyQuantumQuiz: "Quiz Quantique",
		KeyNexusChat:   "Chat Nexus",
		KeyCosmosLearn: "Apprendre le Cosmos",
		KeyIdeaVault:   "Coffre à idées",
		KeyMathPath:    "Parcours Maths",
		KeySkillForge:  "Forge de compétences",
		KeyCodeNexus:   "Code Nexus",

		KeySectionCommand: "Commande",
		KeySectionAcademy: "Académie",
		KeySectionTools:   "Outils neuronaux",

		KeyLanguage:      "Langue",
		KeySelectRegion:  "Choisir la région",
		KeyFocus:         "FOCUS",
		KeyPause:         "PAUSE",
		KeyLogOut:        "Déconnexion",
		KeySignUpToSave:  "Inscrivez-vous pour sauvegarder",
		KeyConfirmLogout: "Voulez-vous vraiment vous déconnecter ?",
		KeyWelcome:       "Bon retour",
		KeyLevel:         "Niveau",
		KeySessions:      "Sessions",
		KeyNodes:         "Nœuds explorés",
		KeyMinutes:       "Minutes de débat",
		KeyQuizScore:     "Score du quiz",
		KeyWeekly:        "Activité hebdomadaire",
		KeyNextLevel:     "Niveau suivant",
		KeySignIn:        "Se connecter",
		KeySignUp:        "Créer un compte",
		KeyEmail:         "E-mail",
		KeyPassword:      "Mot de passe",
		KeyName:          "Nom",
		KeyContinueGuest: "Continuer en invité",
		KeySigningIn:     "Connexion...",
	},
	model.LangHindi: {
		KeyDashboard:   "डैशबोर्ड",
		KeyNeuroMap:    "न्यूरोमैप",
		KeyMindMeld:    "माइंडमेल्ड",
		KeyVisionLab:   "विज़न लैब",
		KeyQuantumQuiz: "क्वांटम क्विज़",
		KeyNexusChat:   "नेक्सस चैट",
		KeyCosmosLearn: "कॉसमॉस लर्न",
		KeyIdeaVault:   "आइडिया वॉल्ट",
		KeyMathPath:    "गणित पथ",
		KeySkillForge:  "स्किल फोर्ज",
		KeyCodeNexus:   "कोड नेक्सस",

		KeyLanguage:  "भाषा",
		KeyLogOut:    "लॉग आउट",
		KeyWelcome:   "वापसी पर स्वागत है",
		KeyLevel:     "स्तर",
		KeySessions:  "सत्र",
		KeyQuizScore: "क्विज़ स्कोर",
		KeyWeekly:    "साप्ताहिक गतिविधि",
		KeySignIn:    "साइन इन",
		KeyEmail:     "ईमेल",
		KeyPassword:  "पासवर्ड",
	},
}
