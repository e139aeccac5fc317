package labels

import "golang.org/x/text/language"

var translations = map[language.Tag]map[string]string{
	language.English: {
		"type.1000": "Seamless pipe",
		"type.1010": "Welded pipe",
		"type.2110": "Seamless elbow 90°",
		"type.2100": "Seamless elbow 45°",
		"type.2610": "Welded elbow 90°",
		"type.2600": "Welded elbow 45°",
		"type.3000": "Equal tee",
		"type.3100": "Reducing tee",
		"type.3150": "Reducing tee, reduced outlet",
		"type.3160": "Reducing tee, extruded outlet",
		"type.4000": "Concentric reducer",
		"type.4010": "Eccentric reducer",
		"type.5000": "Cap",
		"type.6000": "Blind flange",
		"type.7000": "Welding neck flange",

		"category.PIPE":    "Pipes",
		"category.ELBOW":   "Elbows",
		"category.TEE":     "Tees",
		"category.REDUCER": "Reducers",
		"category.CAP":     "Caps",
		"category.FLANGE":  "Flanges",

		"material.N":  "Carbon steel",
		"material.S":  "Stainless steel",
		"free_entry":  "Free entry",
		"group.other": "Other",
	},
	language.German: {
		"type.1000": "Nahtloses Rohr",
		"type.1010": "Geschweißtes Rohr",
		"type.2110": "Nahtloser Bogen 90°",
		"type.2100": "Nahtloser Bogen 45°",
		"type.2610": "Geschweißter Bogen 90°",
		"type.2600": "Geschweißter Bogen 45°",
		"type.3000": "T-Stück",
		"type.3100": "Reduziertes T-Stück",
		"type.3150": "Reduziertes T-Stück, reduzierter Abgang",
		"type.3160": "Reduziertes T-Stück, ausgehalster Abgang",
		"type.4000": "Konzentrische Reduzierung",
		"type.4010": "Exzentrische Reduzierung",
		"type.5000": "Kappe",
		"type.6000": "Blindflansch",
		"type.7000": "Vorschweißflansch",

		"category.PIPE":    "Rohre",
		"category.ELBOW":   "Bögen",
		"category.TEE":     "T-Stücke",
		"category.REDUCER": "Reduzierungen",
		"category.CAP":     "Kappen",
		"category.FLANGE":  "Flansche",

		"material.N":  "C-Stahl",
		"material.S":  "Edelstahl",
		"free_entry":  "Freie Eingabe",
		"group.other": "Sonstige",
	},
	language.Russian: {
		"type.1000": "Труба бесшовная",
		"type.1010": "Труба сварная",
		"type.2110": "Отвод бесшовный 90°",
		"type.2100": "Отвод бесшовный 45°",
		"type.2610": "Отвод сварной 90°",
		"type.2600": "Отвод сварной 45°",
		"type.3000": "Тройник равнопроходной",
		"type.3100": "Тройник переходной",
		"type.3150": "Тройник переходной с редуцированным отводом",
		"type.3160": "Тройник переходной с вытянутым отводом",
		"type.4000": "Переход концентрический",
		"type.4010": "Переход эксцентрический",
		"type.5000": "Заглушка",
		"type.6000": "Фланец глухой",
		"type.7000": "Фланец воротниковый",

		"category.PIPE":    "Трубы",
		"category.ELBOW":   "Отводы",
		"category.TEE":     "Тройники",
		"category.REDUCER": "Переходы",
		"category.CAP":     "Заглушки",
		"category.FLANGE":  "Фланцы",

		"material.N":  "Углеродистая сталь",
		"material.S":  "Нержавеющая сталь",
		"free_entry":  "Ручной ввод",
		"group.other": "Прочее",
	},
}
