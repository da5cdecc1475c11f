package entities

// DocumentKind selects between the two generated documents. They share the
// same pricing inputs but differ in legal framing.

type DocumentKind string

const (
	DocumentKindContrato DocumentKind = "contrato"
	DocumentKindRecibo   DocumentKind = "recibo"
)

// GeneratedDocument is the composed document for one booking. It is derived on
// demand from booking + config + items + installments and never persisted;
// regenerating replaces the previous text.

type GeneratedDocument struct {
	Kind     DocumentKind `json:"kind"`
	Body     string       `json:"body"`
	FileName string       `json:"file_name"`
	PDF      []byte       `json:"-"`
}
