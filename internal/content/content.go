// Package content serves the portal's static informational pages: the FAQ
// and the access-to-information legislation catalog. The text is maintained
// in Markdown and rendered to sanitized-enough HTML once, on first use; the
// API exposes both forms so clients can pick whichever suits their rendering
// pipeline.
package content

import (
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// FAQItem is a single question and its answer, in Markdown and rendered HTML.
type FAQItem struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answer_html"`
}

// FAQCategory groups FAQ items under a tab of the public FAQ page.
type FAQCategory struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Items []FAQItem `json:"items"`
}

// Law describes one statute in the legislation catalog.
type Law struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Link          string   `json:"link,omitempty"`
	KeyProvisions []string `json:"key_provisions"`
}

// LegislationSection groups laws by government sphere.
type LegislationSection struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Laws  []Law  `json:"laws"`
}

var (
	renderOnce sync.Once
	faqData    []FAQCategory
)

// renderHTML converts Markdown to HTML with the common extension set.
func renderHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, r))
}

// FAQ returns the FAQ catalog with answers rendered to HTML. The returned
// slice is shared and must not be mutated by callers.
func FAQ() []FAQCategory {
	renderOnce.Do(func() {
		faqData = faqSource
		for ci := range faqData {
			for qi := range faqData[ci].Items {
				it := &faqData[ci].Items[qi]
				it.AnswerHTML = renderHTML(it.Answer)
			}
		}
	})
	return faqData
}

// Legislation returns the legislation catalog. The returned slice is shared
// and must not be mutated by callers.
func Legislation() []LegislationSection {
	return legislationSource
}

var faqSource = []FAQCategory{
	{
		ID:    "geral",
		Label: "Geral",
		Items: []FAQItem{
			{
				Question: "O que é o Sistema de Informação ao Cidadão (SIC)?",
				Answer:   "O Sistema de Informação ao Cidadão (SIC) é um serviço que permite a qualquer pessoa, física ou jurídica, encaminhar pedidos de acesso à informação para órgãos e entidades do poder público. Foi criado para atender às determinações da **Lei de Acesso à Informação** (Lei nº 12.527/2011).",
			},
			{
				Question: "Quem pode solicitar informações pelo SIC?",
				Answer:   "Qualquer pessoa, física ou jurídica, pode solicitar informações pelo SIC, sem necessidade de apresentar motivo ou justificativa para o pedido.",
			},
			{
				Question: "É preciso pagar alguma taxa para solicitar informações?",
				Answer:   "Não. O acesso à informação pública é gratuito. Apenas em casos específicos, quando há necessidade de reprodução de documentos, poderá ser cobrado o valor necessário ao ressarcimento do custo dos serviços e dos materiais utilizados.",
			},
			{
				Question: "Quais informações posso solicitar?",
				Answer:   "Você pode solicitar qualquer informação pública produzida ou custodiada pelos órgãos e entidades públicas que não esteja classificada como sigilosa, conforme previsto na Lei de Acesso à Informação.",
			},
		},
	},
	{
		ID:    "solicitacao",
		Label: "Solicitações",
		Items: []FAQItem{
			{
				Question: "Como faço para solicitar uma informação?",
				Answer:   "Para solicitar uma informação, acesse a página *Solicitar Informação* neste portal, preencha o formulário com seus dados pessoais e descreva de forma clara e específica a informação desejada. Após o envio, você receberá um número de protocolo para acompanhamento.",
			},
			{
				Question: "Quais dados são obrigatórios para fazer uma solicitação?",
				Answer:   "Para fazer uma solicitação, é obrigatório informar: nome completo, documento de identificação (CPF ou CNPJ), e-mail para contato e a descrição clara da informação solicitada. O telefone é opcional, mas recomendado para facilitar o contato.",
			},
			{
				Question: "Posso solicitar qualquer tipo de informação?",
				Answer:   "Você pode solicitar qualquer informação pública que não esteja protegida por sigilo. Informações pessoais, sigilosas por lei (como segurança nacional, segredo de justiça, etc.) ou que exijam trabalhos adicionais de análise e consolidação podem ter restrições ou prazos diferenciados.",
			},
			{
				Question: "Existe limite de solicitações que posso fazer?",
				Answer:   "Não há limite para o número de solicitações que uma pessoa pode fazer. No entanto, pedidos repetitivos ou que caracterizem abuso do direito podem ser negados, conforme previsto na legislação.",
			},
		},
	},
	{
		ID:    "prazos",
		Label: "Prazos",
		Items: []FAQItem{
			{
				Question: "Qual é o prazo para receber a resposta da minha solicitação?",
				Answer:   "O prazo para resposta é de até **20 (vinte) dias corridos**, contados a partir do primeiro dia útil após o recebimento da solicitação. Este prazo pode ser prorrogado por mais 10 (dez) dias, mediante justificativa expressa.",
			},
			{
				Question: "O que acontece se o prazo de resposta não for cumprido?",
				Answer:   "Se o prazo não for cumprido, você pode entrar com recurso administrativo. O descumprimento do prazo sem justificativa pode caracterizar conduta ilícita do agente público responsável.",
			},
			{
				Question: "Como sou informado sobre a prorrogação do prazo?",
				Answer:   "Caso haja necessidade de prorrogação do prazo, você será informado por meio do e-mail cadastrado na solicitação, com a devida justificativa para a extensão do prazo.",
			},
			{
				Question: "Existe prazo para entrar com recurso caso minha solicitação seja negada?",
				Answer:   "Sim. O prazo para apresentar recurso é de **10 (dez) dias**, contados da ciência da decisão de negativa de acesso à informação ou do término do prazo para resposta.",
			},
		},
	},
	{
		ID:    "acompanhamento",
		Label: "Acompanhamento",
		Items: []FAQItem{
			{
				Question: "Como acompanho o andamento da minha solicitação?",
				Answer:   "Para acompanhar sua solicitação, acesse a página *Acompanhar Solicitação* e informe o número de protocolo recebido no momento do envio do pedido. O sistema mostrará o status atual da sua solicitação.",
			},
			{
				Question: "O que fazer se eu perder o número do protocolo?",
				Answer:   "Caso tenha perdido o número do protocolo, você pode entrar em contato com o SIC por meio dos canais de atendimento disponíveis, informando seus dados pessoais para recuperação do número.",
			},
			{
				Question: "Quais são os possíveis status da minha solicitação?",
				Answer:   "Os principais status são: *Em análise* (solicitação recebida e em processamento), *Concluído* (resposta disponível) e *Negado* (acesso à informação foi negado, com a devida justificativa).",
			},
			{
				Question: "Posso alterar minha solicitação após o envio?",
				Answer:   "Não é possível alterar uma solicitação após o envio. Caso necessite modificar alguma informação, recomendamos que faça uma nova solicitação, mencionando o protocolo anterior.",
			},
		},
	},
	{
		ID:    "recursos",
		Label: "Recursos",
		Items: []FAQItem{
			{
				Question: "O que é um recurso e quando posso apresentá-lo?",
				Answer:   "Recurso é um pedido de revisão da resposta recebida. Você pode apresentar recurso quando: sua solicitação for negada; a informação fornecida for incompleta ou não corresponder à solicitada; não concordar com a justificativa legal para a classificação da informação como sigilosa; ou quando o prazo de resposta não for cumprido.",
			},
			{
				Question: "Como faço para apresentar um recurso?",
				Answer:   "Para apresentar um recurso, acesse a página *Acompanhar Solicitação*, localize sua solicitação pelo número de protocolo e utilize a opção de recurso. Justifique o motivo e envie.",
			},
			{
				Question: "Qual é o prazo para resposta de um recurso?",
				Answer:   "O prazo para resposta de um recurso é de **5 (cinco) dias úteis**, contados do recebimento do recurso pela autoridade competente.",
			},
			{
				Question: "Quantas instâncias recursais existem?",
				Answer:   "Existem até quatro instâncias recursais: 1ª instância, dirigido à autoridade hierarquicamente superior à que negou o acesso; 2ª instância, dirigido à autoridade máxima do órgão; 3ª instância, dirigido à Controladoria-Geral; e 4ª instância, dirigido à Comissão Mista de Reavaliação de Informações.",
			},
		},
	},
}

var legislationSource = []LegislationSection{
	{
		ID:    "federal",
		Label: "Federal",
		Laws: []Law{
			{
				Name:        "Lei nº 12.527, de 18 de novembro de 2011",
				Description: "Lei de Acesso à Informação. Regula o acesso a informações previsto no inciso XXXIII do art. 5º, no inciso II do § 3º do art. 37 e no § 2º do art. 216 da Constituição Federal.",
				Link:        "http://www.planalto.gov.br/ccivil_03/_ato2011-2014/2011/lei/l12527.htm",
				KeyProvisions: []string{
					"Estabelece procedimentos para garantir o acesso à informação pública",
					"Define conceitos e diretrizes para a classificação de informações sigilosas",
					"Estabelece prazos para atendimento das solicitações",
					"Define responsabilidades e sanções em caso de descumprimento",
				},
			},
			{
				Name:        "Decreto nº 7.724, de 16 de maio de 2012",
				Description: "Regulamenta a Lei de Acesso à Informação no âmbito do Poder Executivo Federal.",
				Link:        "http://www.planalto.gov.br/ccivil_03/_ato2011-2014/2012/decreto/d7724.htm",
				KeyProvisions: []string{
					"Detalha procedimentos para implementação da Lei de Acesso à Informação",
					"Estabelece regras para transparência ativa e passiva",
					"Define competências e responsabilidades dos órgãos",
					"Regulamenta o funcionamento do Serviço de Informação ao Cidadão (SIC)",
				},
			},
			{
				Name:        "Lei Complementar nº 101, de 4 de maio de 2000",
				Description: "Lei de Responsabilidade Fiscal. Estabelece normas de finanças públicas voltadas para a responsabilidade na gestão fiscal.",
				Link:        "http://www.planalto.gov.br/ccivil_03/leis/lcp/lcp101.htm",
				KeyProvisions: []string{
					"Determina a transparência da gestão fiscal",
					"Estabelece instrumentos de transparência fiscal",
					"Prevê a participação popular na elaboração de planos e orçamentos",
					"Define sanções pelo descumprimento das normas",
				},
			},
			{
				Name:        "Lei Complementar nº 131, de 27 de maio de 2009",
				Description: "Lei da Transparência. Acrescenta dispositivos à Lei de Responsabilidade Fiscal, determinando a disponibilização, em tempo real, de informações pormenorizadas sobre a execução orçamentária e financeira.",
				Link:        "http://www.planalto.gov.br/ccivil_03/leis/lcp/lcp131.htm",
				KeyProvisions: []string{
					"Determina a disponibilização de informações em tempo real",
					"Estabelece prazos para implementação da transparência",
					"Define o conteúdo mínimo a ser divulgado",
					"Prevê sanções pelo descumprimento",
				},
			},
		},
	},
	{
		ID:    "estadual",
		Label: "Estadual",
		Laws: []Law{
			{
				Name:        "Lei Estadual de Acesso à Informação",
				Description: "Regulamenta o acesso à informação no âmbito estadual, em conformidade com a Lei Federal nº 12.527/2011.",
				KeyProvisions: []string{
					"Adapta as diretrizes federais à realidade estadual",
					"Estabelece procedimentos específicos para órgãos estaduais",
					"Define competências e responsabilidades no âmbito estadual",
					"Estabelece prazos e procedimentos para atendimento das solicitações",
				},
			},
			{
				Name:        "Decreto Estadual de Regulamentação",
				Description: "Regulamenta a Lei Estadual de Acesso à Informação, detalhando procedimentos e responsabilidades.",
				KeyProvisions: []string{
					"Detalha o funcionamento do SIC estadual",
					"Estabelece fluxos de atendimento às solicitações",
					"Define responsabilidades dos órgãos estaduais",
					"Regulamenta a classificação de informações sigilosas",
				},
			},
		},
	},
	{
		ID:    "municipal",
		Label: "Municipal",
		Laws: []Law{
			{
				Name:        "Lei Municipal de Acesso à Informação",
				Description: "Regulamenta o acesso à informação no âmbito municipal, em conformidade com a Lei Federal nº 12.527/2011.",
				KeyProvisions: []string{
					"Adapta as diretrizes federais à realidade municipal",
					"Estabelece procedimentos específicos para órgãos municipais",
					"Define competências e responsabilidades no âmbito municipal",
					"Estabelece prazos e procedimentos para atendimento das solicitações",
				},
			},
			{
				Name:        "Decreto Municipal de Regulamentação",
				Description: "Regulamenta a Lei Municipal de Acesso à Informação, detalhando procedimentos e responsabilidades.",
				KeyProvisions: []string{
					"Detalha o funcionamento do SIC municipal",
					"Estabelece fluxos de atendimento às solicitações",
					"Define responsabilidades dos órgãos municipais",
					"Regulamenta a classificação de informações sigilosas",
				},
			},
			{
				Name:        "Lei Orgânica Municipal",
				Description: "Estabelece princípios de transparência e publicidade na administração municipal.",
				KeyProvisions: []string{
					"Define princípios de transparência na gestão municipal",
					"Estabelece diretrizes para publicidade dos atos oficiais",
					"Prevê mecanismos de participação popular",
					"Determina a prestação de contas à população",
				},
			},
		},
	},
}
