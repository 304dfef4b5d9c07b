package model

import "time"

// Process categories handled by the platform. The store does not enforce
// this list; the dashboard treats it as closed.
const (
	TypeSIMCAR = "SIMCAR"
	TypePEF    = "PEF"
	TypeCCSEMA = "CC-SEMA"
	TypeDAAP   = "DAAP"
	TypeGeo    = "Georreferenciamento"
	TypeDLA    = "DLA"
	TypeLaudos = "Laudos"
	TypePRA    = "PRA"
)

// Status values observed across the dashboard. The vocabulary is open: the
// store accepts any non-empty status, these constants exist for the
// aggregation code.
const (
	StatusEmAnalise         = "Em Análise"
	StatusDocumentacao      = "Documentação"
	StatusAprovado          = "Aprovado"
	StatusConcluido         = "Concluído"
	StatusPendente          = "Pendente"
	StatusAguardandoAnalise = "Aguardando Análise"
	StatusInativo           = "Inativo"
	StatusEmElaboracao      = "Em Elaboração"
)

// Priority levels. Closed set, validated by the store.
const (
	PriorityHigh   = "Alta"
	PriorityMedium = "Média"
	PriorityLow    = "Baixa"
)

// Process represents one environmental licensing/compliance case.
type Process struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Technician  string    `json:"technician"` // display name, not a foreign key
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Area        string    `json:"area,omitempty"` // free text, e.g. "500 hectares"
	Location    string    `json:"location"`
	StartDate   string    `json:"startDate"`
	Deadline    string    `json:"deadline"`
	Documents   int       `json:"documents"`
	Progress    int       `json:"progress"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Document is the record returned by the simulated upload. The file content
// itself is discarded, only the metadata and the per-process counter are
// kept.
type Document struct {
	ID         string    `json:"id"`
	ProcessID  string    `json:"processId"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}
