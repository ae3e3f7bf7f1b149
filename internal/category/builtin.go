package category

// Category labels shared by the built-in rules and the amount heuristic.
const (
	CategoryFood          = "Alimentação"
	CategoryTransport     = "Transporte"
	CategoryHousing       = "Moradia"
	CategoryHealth        = "Saúde"
	CategoryLeisure       = "Lazer"
	CategoryShopping      = "Compras"
	CategoryEducation     = "Educação"
	CategorySubscriptions = "Assinaturas"
	CategorySalary        = "Salário"
	CategoryFreelance     = "Freelance"
	CategoryInvestments   = "Investimentos"
	CategoryOther         = "Outros"
)

// builtinRules is the seed catalog, tuned for Brazilian bank statement
// descriptions. Priority gaps leave room for custom rules in between.
var builtinRules = []Rule{
	{
		ID:         "builtin-food-delivery",
		Keywords:   []string{"ifood", "uber eats", "delivery", "rappi", "ze delivery"},
		Category:   CategoryFood,
		Confidence: 0.9,
		AppliesTo:  AppliesExpense,
		Priority:   10,
	},
	{
		ID:               "builtin-food-grocery",
		Keywords:         []string{"mercado", "supermercado", "padaria", "acougue", "hortifruti", "atacadao"},
		NegativeKeywords: []string{"mercado livre", "mercado pago"},
		Category:         CategoryFood,
		Confidence:       0.85,
		AppliesTo:        AppliesExpense,
		Priority:         20,
	},
	{
		ID:         "builtin-food-dining",
		Keywords:   []string{"restaurante", "lanchonete", "pizzaria", "hamburgueria", "cafeteria", "churrascaria"},
		Category:   CategoryFood,
		Confidence: 0.8,
		AppliesTo:  AppliesExpense,
		Priority:   30,
	},
	{
		ID:               "builtin-transport",
		Keywords:         []string{"uber", "99app", "99 pop", "taxi", "metro", "onibus", "combustivel", "posto", "estacionamento", "pedagio"},
		NegativeKeywords: []string{"uber eats"},
		Category:         CategoryTransport,
		Confidence:       0.85,
		AppliesTo:        AppliesExpense,
		Priority:         40,
	},
	{
		ID:         "builtin-housing",
		Keywords:   []string{"aluguel", "condominio", "energia", "luz", "agua", "gas", "iptu", "internet residencial"},
		Category:   CategoryHousing,
		Confidence: 0.9,
		AppliesTo:  AppliesExpense,
		Priority:   50,
	},
	{
		ID:         "builtin-health",
		Keywords:   []string{"farmacia", "drogaria", "hospital", "clinica", "laboratorio", "plano de saude", "dentista"},
		Category:   CategoryHealth,
		Confidence: 0.9,
		AppliesTo:  AppliesExpense,
		Priority:   60,
	},
	{
		ID:         "builtin-subscriptions",
		Keywords:   []string{"netflix", "spotify", "amazon prime", "disney", "hbo", "youtube premium", "globoplay", "assinatura"},
		Category:   CategorySubscriptions,
		Confidence: 0.95,
		AppliesTo:  AppliesExpense,
		Priority:   70,
	},
	{
		ID:         "builtin-leisure",
		Keywords:   []string{"cinema", "teatro", "show", "ingresso", "viagem", "hotel", "airbnb"},
		Category:   CategoryLeisure,
		Confidence: 0.8,
		AppliesTo:  AppliesExpense,
		Priority:   80,
	},
	{
		ID:               "builtin-shopping",
		Keywords:         []string{"mercado livre", "amazon", "magalu", "americanas", "shein", "aliexpress", "shopping"},
		NegativeKeywords: []string{"amazon prime"},
		Category:         CategoryShopping,
		Confidence:       0.8,
		AppliesTo:        AppliesExpense,
		Priority:         90,
	},
	{
		ID:         "builtin-education",
		Keywords:   []string{"curso", "faculdade", "universidade", "escola", "livraria", "udemy", "alura"},
		Category:   CategoryEducation,
		Confidence: 0.85,
		AppliesTo:  AppliesExpense,
		Priority:   100,
	},
	{
		ID:         "builtin-salary",
		Keywords:   []string{"salario", "folha de pagamento", "remuneracao", "provento"},
		Patterns:   []string{`\bsal\b`},
		Category:   CategorySalary,
		Confidence: 0.95,
		AppliesTo:  AppliesIncome,
		Priority:   110,
	},
	{
		ID:         "builtin-freelance",
		Keywords:   []string{"freelance", "freela", "nota fiscal", "servico prestado", "honorario"},
		Category:   CategoryFreelance,
		Confidence: 0.85,
		AppliesTo:  AppliesIncome,
		Priority:   120,
	},
	{
		ID:         "builtin-investments",
		Keywords:   []string{"rendimento", "dividendo", "juros sobre capital", "resgate", "tesouro direto", "cdb"},
		Category:   CategoryInvestments,
		Confidence: 0.85,
		AppliesTo:  AppliesIncome,
		Priority:   130,
	},
}
