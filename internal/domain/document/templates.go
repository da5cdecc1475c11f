package document

import "text/template"

// Template version history:
//   v1: initial long-form contract and short-form receipt, consolidated from
//        the previously duplicated document variants.

const contratoTemplateV1 = `CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE BUFFET DE PIZZAS

CONTRATADA: {{.ContractorName}}, inscrita no CNPJ sob o nº {{.ContractorCNPJ}}, com sede em {{.ContractorAddress}}, doravante denominada CONTRATADA.

CONTRATANTE: {{.ClientName}}, inscrito(a) no CPF sob o nº {{.ClientCPF}}, residente e domiciliado(a) em {{.ResidentialAddress}}, doravante denominado(a) CONTRATANTE.

As partes acima identificadas têm, entre si, justo e acertado o presente Contrato de Prestação de Serviços de Buffet, que se regerá pelas cláusulas seguintes e pelas condições descritas no presente.

CLÁUSULA 1ª - DO OBJETO
A CONTRATADA prestará serviço de rodízio de pizzas no evento a realizar-se no dia {{.EventDate}}, das {{.StartTime}} às {{.EndTime}} horas, no endereço {{.EventAddress}}.

CLÁUSULA 2ª - DOS CONVIDADOS
O serviço atenderá {{.Adults}} adulto(s) e {{.Children}} criança(s) de 5 a 9 anos, totalizando {{.Guests}} convidado(s). Crianças de até 4 anos não são contabilizadas.

CLÁUSULA 3ª - DA EQUIPE
Para o atendimento do evento a CONTRATADA disponibilizará 1 (um) pizzaiolo e {{.Waiters}} garçom(ns).
{{if .Items}}
CLÁUSULA 4ª - DOS ITENS ADICIONAIS
Ficam acordados os seguintes itens e descontos, já considerados no valor total:
{{range .Items}}  {{.Label}}: {{.Description}} - {{.Quantity}} x R$ {{.UnitValue}} = R$ {{.LineTotal}}
{{end}}{{end}}
CLÁUSULA 5ª - DO PREÇO E DA FORMA DE PAGAMENTO
Pelos serviços contratados o CONTRATANTE pagará à CONTRATADA o valor total de R$ {{.Total}}, da seguinte forma: entrada de R$ {{.Deposit}} ({{.DepositPercent}}% do total) no ato da assinatura deste contrato e o saldo restante de R$ {{.Remaining}} até a data do evento.
{{if .Installments}}
O saldo restante será pago nas seguintes parcelas:
{{range .Installments}}  Parcela {{.Seq}}: R$ {{.Amount}}, com vencimento em {{.DueDate}}
{{end}}{{end}}
CLÁUSULA 6ª - DO CANCELAMENTO
Em caso de cancelamento por parte do CONTRATANTE com antecedência inferior a 15 (quinze) dias do evento, a entrada não será restituída.

CLÁUSULA 7ª - DAS DISPOSIÇÕES GERAIS
A CONTRATADA fornecerá todos os insumos, equipamentos e utensílios necessários à execução do serviço. Casos omissos serão resolvidos de comum acordo entre as partes.
`

const contratoAssinaturasV1 = `E, por estarem assim justos e contratados, firmam o presente instrumento em duas vias de igual teor.

{{.City}}, {{.GeneratedAt}}.


_____________________________________
{{.ContractorName}}
CNPJ {{.ContractorCNPJ}}
CONTRATADA


_____________________________________
{{.ClientName}}
CPF {{.ClientCPF}}
CONTRATANTE
`

const reciboTemplateV1 = `RECIBO Nº {{.ReceiptID}}

Recebemos de {{.ClientName}}, inscrito(a) no CPF sob o nº {{.ClientCPF}}, a importância de R$ {{.Deposit}} ({{.DepositWords}}), referente à entrada ({{.DepositPercent}}% do valor total de R$ {{.Total}}) do contrato de prestação de serviços de buffet de pizzas para o evento do dia {{.EventDate}}, no endereço {{.EventAddress}}.

Saldo restante: R$ {{.Remaining}}, a ser quitado até a data do evento.
{{if .Installments}}
Parcelamento acordado do saldo restante:
{{range .Installments}}  Parcela {{.Seq}}: R$ {{.Amount}}, com vencimento em {{.DueDate}}
{{end}}{{end}}
Para clareza, firmamos o presente recibo.

{{.City}}, {{.GeneratedAt}}.


_____________________________________
{{.ContractorName}}
CNPJ {{.ContractorCNPJ}}
`

var (
	contratoTemplate = template.Must(template.New("contrato").Parse(contratoTemplateV1 + PageBreak + contratoAssinaturasV1))
	reciboTemplate   = template.Must(template.New("recibo").Parse(reciboTemplateV1))
)
