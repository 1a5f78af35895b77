package phrase

// builtin is the static phrase table: the UI strings the app is known to
// ship, each with a vetted rendering for every target language. The final
// three entries cover punctuation fragments that appear as standalone keys.
var builtin = Table{
	"Documentation": {
		"ar":      "التوثيق",
		"de":      "Dokumentation",
		"es":      "Documentación",
		"fr":      "Documentation",
		"hi":      "प्रलेखन",
		"ja":      "ドキュメント",
		"ko":      "문서",
		"pt":      "Documentação",
		"zh-Hans": "文档",
		"en":      "Documentation",
	},
	"Email Support": {
		"ar":      "دعم البريد الإلكتروني",
		"de":      "E-Mail-Support",
		"es":      "Soporte por correo",
		"fr":      "Support par e-mail",
		"hi":      "ईमेल समर्थन",
		"ja":      "メールサポート",
		"ko":      "이메일 지원",
		"pt":      "Suporte por e-mail",
		"zh-Hans": "邮件支持",
		"en":      "Email Support",
	},
	"Hide Completed Items": {
		"ar":      "إخفاء العناصر المكتملة",
		"de":      "Erledigte Elemente ausblenden",
		"es":      "Ocultar elementos completados",
		"fr":      "Masquer les éléments terminés",
		"hi":      "पूर्ण आइटम छुपाएं",
		"ja":      "完了したアイテムを非表示",
		"ko":      "완료된 항목 숨기기",
		"pt":      "Ocultar itens concluídos",
		"zh-Hans": "隐藏已完成项目",
		"en":      "Hide Completed Items",
	},
	"Organizes habits and tasks by time periods: Morning, Afternoon, Evening, and Today": {
		"ar":      "ينظم العادات والمهام حسب الفترات الزمنية: الصباح، بعد الظهر، المساء، واليوم",
		"de":      "Organisiert Gewohnheiten und Aufgaben nach Tageszeiten: Morgen, Nachmittag, Abend und Heute",
		"es":      "Organiza hábitos y tareas por períodos de tiempo: Mañana, Tarde, Noche y Hoy",
		"fr":      "Organise les habitudes et tâches par périodes : Matin, Après-midi, Soir et Aujourd'hui",
		"hi":      "समय अवधि के अनुसार आदतों और कार्यों को व्यवस्थित करता है: सुबह, दोपहर, शाम, और आज",
		"ja":      "習慣とタスクを時間帯別に整理：朝、午後、夕方、今日",
		"ko":      "습관과 작업을 시간대별로 정리: 아침, 오후, 저녁, 오늘",
		"pt":      "Organiza hábitos e tarefas por períodos: Manhã, Tarde, Noite e Hoje",
		"zh-Hans": "按时间段组织习惯和任务：上午、下午、晚上和今天",
		"en":      "Organizes habits and tasks by time periods: Morning, Afternoon, Evening, and Today",
	},
	"Hides completed habits and tasks from view": {
		"ar":      "يخفي العادات والمهام المكتملة من العرض",
		"de":      "Blendet erledigte Gewohnheiten und Aufgaben aus",
		"es":      "Oculta hábitos y tareas completados de la vista",
		"fr":      "Cache les habitudes et tâches terminées",
		"hi":      "पूर्ण आदतों और कार्यों को दृश्य से छुपाता है",
		"ja":      "完了した習慣とタスクを非表示にします",
		"ko":      "완료된 습관과 작업을 보기에서 숨깁니다",
		"pt":      "Oculta hábitos e tarefas concluídos da visualização",
		"zh-Hans": "从视图中隐藏已完成的习惯和任务",
		"en":      "Hides completed habits and tasks from view",
	},
	"Time-Based Filtering": {
		"ar":      "التصفية القائمة على الوقت",
		"de":      "Zeitbasierte Filterung",
		"es":      "Filtrado basado en tiempo",
		"fr":      "Filtrage temporel",
		"hi":      "समय-आधारित फ़िल्टरिंग",
		"ja":      "時間ベースフィルタリング",
		"ko":      "시간 기반 필터링",
		"pt":      "Filtragem baseada em tempo",
		"zh-Hans": "基于时间的过滤",
		"en":      "Time-Based Filtering",
	},
	"View Options": {
		"ar":      "خيارات العرض",
		"de":      "Ansichtsoptionen",
		"es":      "Opciones de vista",
		"fr":      "Options d'affichage",
		"hi":      "दृश्य विकल्प",
		"ja":      "表示オプション",
		"ko":      "보기 옵션",
		"pt":      "Opções de visualização",
		"zh-Hans": "查看选项",
		"en":      "View Options",
	},
	"Nothing to do.": {
		"ar":      "لا يوجد شيء للقيام به.",
		"de":      "Nichts zu tun.",
		"es":      "Nada que hacer.",
		"fr":      "Rien à faire.",
		"hi":      "कुछ नहीं करना.",
		"ja":      "やることはありません。",
		"ko":      "할 일이 없습니다.",
		"pt":      "Nada para fazer.",
		"zh-Hans": "无事可做。",
		"en":      "Nothing to do.",
	},
	"Habit Reminders": {
		"ar":      "تذكيرات العادات",
		"de":      "Gewohnheitserinnerungen",
		"es":      "Recordatorios de hábitos",
		"fr":      "Rappels d'habitudes",
		"hi":      "आदत अनुस्मारक",
		"ja":      "習慣リマインダー",
		"ko":      "습관 알림",
		"pt":      "Lembretes de hábitos",
		"zh-Hans": "习惯提醒",
		"en":      "Habit Reminders",
	},
	"Enable reminders": {
		"ar":      "تمكين التذكيرات",
		"de":      "Erinnerungen aktivieren",
		"es":      "Habilitar recordatorios",
		"fr":      "Activer les rappels",
		"hi":      "अनुस्मारक सक्षम करें",
		"ja":      "リマインダーを有効にする",
		"ko":      "알림 활성화",
		"pt":      "Ativar lembretes",
		"zh-Hans": "启用提醒",
		"en":      "Enable reminders",
	},
	"All reminders disabled": {
		"ar":      "جميع التذكيرات معطلة",
		"de":      "Alle Erinnerungen deaktiviert",
		"es":      "Todos los recordatorios desactivados",
		"fr":      "Tous les rappels désactivés",
		"hi":      "सभी अनुस्मारक अक्षम",
		"ja":      "すべてのリマインダーが無効",
		"ko":      "모든 알림이 비활성화됨",
		"pt":      "Todos os lembretes desativados",
		"zh-Hans": "所有提醒已禁用",
		"en":      "All reminders disabled",
	},
	" of ": {
		"ar":      "من",
		"de":      "von",
		"es":      "de",
		"fr":      "de",
		"hi":      "का",
		"ja":      "の",
		"ko":      "~의",
		"pt":      "de",
		"zh-Hans": "的",
		"en":      " of ",
	},
	"-": {
		"ar":      "-",
		"de":      "-",
		"es":      "-",
		"fr":      "-",
		"hi":      "-",
		"ja":      "-",
		"ko":      "-",
		"pt":      "-",
		"zh-Hans": "-",
		"en":      "-",
	},
	":": {
		"ar":      ":",
		"de":      ":",
		"es":      ":",
		"fr":      ":",
		"hi":      ":",
		"ja":      ":",
		"ko":      ":",
		"pt":      ":",
		"zh-Hans": ":",
		"en":      ":",
	},
}
