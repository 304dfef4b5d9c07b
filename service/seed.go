package service

import (
	"time"

	"github.com/jupiarasanches/gestao-processos3/model"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedProcesses returns the demo dataset both the dashboard and the tests
// were written against.
func SeedProcesses() []*model.Process {
	return []*model.Process{
		{
			ID:          "SIMCAR-2024-001",
			Type:        "SIMCAR",
			Title:       "Licenciamento Fazenda São João",
			Client:      "Fazenda São João Ltda",
			Technician:  "Maria Santos",
			Status:      "Em Análise",
			Priority:    "Alta",
			Area:        "500 hectares",
			Location:    "Zona Rural - Município XYZ",
			StartDate:   "2024-01-15",
			Deadline:    "2024-02-15",
			Documents:   5,
			Progress:    65,
			Description: "Processo de licenciamento ambiental para atividades agropecuárias",
			CreatedAt:   mustTime("2024-01-15T09:00:00Z"),
			UpdatedAt:   mustTime("2024-01-20T14:30:00Z"),
		},
		{
			ID:          "PEF-2024-002",
			Type:        "PEF",
			Title:       "Plano de Exploração Florestal - Área Norte",
			Client:      "Madeireira Sustentável S.A.",
			Technician:  "João Silva",
			Status:      "Documentação",
			Priority:    "Média",
			Area:        "300 hectares",
			Location:    "Floresta Nacional - Setor 4",
			StartDate:   "2024-01-20",
			Deadline:    "2024-03-01",
			Documents:   8,
			Progress:    40,
			Description: "Elaboração de plano para exploração florestal sustentável",
			CreatedAt:   mustTime("2024-01-20T10:15:00Z"),
			UpdatedAt:   mustTime("2024-01-22T16:45:00Z"),
		},
		{
			ID:          "LAUDOS-2024-003",
			Type:        "Laudos",
			Title:       "Laudo de Viabilidade Ambiental - Complexo Industrial",
			Client:      "Indústria TechVerde Ltda",
			Technician:  "Dr. Roberto Silva",
			Status:      "Concluído",
			Priority:    "Alta",
			Location:    "Distrito Industrial - Cidade ABC",
			StartDate:   "2024-01-10",
			Deadline:    "2024-02-10",
			Documents:   12,
			Progress:    100,
			Description: "Análise de viabilidade ambiental para instalação de complexo industrial",
			CreatedAt:   mustTime("2024-01-10T08:30:00Z"),
			UpdatedAt:   mustTime("2024-02-08T17:20:00Z"),
		},
		{
			ID:          "CC-SEMA-2024-004",
			Type:        "CC-SEMA",
			Title:       "Certidão de Conformidade - Empresa Alpha",
			Client:      "Empresa Alpha Ltda",
			Technician:  "Ana Costa",
			Status:      "Aprovado",
			Priority:    "Baixa",
			Location:    "Zona Industrial - Município DEF",
			StartDate:   "2024-01-05",
			Deadline:    "2024-01-25",
			Documents:   6,
			Progress:    100,
			Description: "Emissão de certidão de conformidade ambiental",
			CreatedAt:   mustTime("2024-01-05T11:00:00Z"),
			UpdatedAt:   mustTime("2024-01-23T15:10:00Z"),
		},
		{
			ID:          "DAAP-2024-005",
			Type:        "DAAP",
			Title:       "Declaração de Atividades - Fazenda Beta",
			Client:      "Fazenda Beta S.A.",
			Technician:  "Carlos Mendes",
			Status:      "Em Análise",
			Priority:    "Média",
			Area:        "1200 hectares",
			Location:    "Zona Rural - Município GHI",
			StartDate:   "2024-01-18",
			Deadline:    "2024-02-28",
			Documents:   4,
			Progress:    50,
			Description: "Declaração anual de atividades com potencial impacto ambiental",
			CreatedAt:   mustTime("2024-01-18T13:45:00Z"),
			UpdatedAt:   mustTime("2024-01-25T09:30:00Z"),
		},
		{
			ID:          "GEO-2024-006",
			Type:        "Georreferenciamento",
			Title:       "Levantamento Topográfico - Lote 456",
			Client:      "Propriedade Rural Esperança",
			Technician:  "Eng. Paula Santos",
			Status:      "Documentação",
			Priority:    "Alta",
			Area:        "800 hectares",
			Location:    "Zona Rural - Município JKL",
			StartDate:   "2024-01-22",
			Deadline:    "2024-03-15",
			Documents:   3,
			Progress:    25,
			Description: "Georreferenciamento de propriedade rural para regularização",
			CreatedAt:   mustTime("2024-01-22T07:20:00Z"),
			UpdatedAt:   mustTime("2024-01-24T12:15:00Z"),
		},
		{
			ID:          "DLA-2024-007",
			Type:        "DLA",
			Title:       "Dispensa de Licenciamento - Atividade de Baixo Impacto",
			Client:      "Microempresa Verde Ltda",
			Technician:  "Fernanda Lima",
			Status:      "Aguardando Análise",
			Priority:    "Baixa",
			Location:    "Centro Comercial - Cidade MNO",
			StartDate:   "2024-01-25",
			Deadline:    "2024-02-20",
			Documents:   2,
			Progress:    80,
			Description: "Solicitação de dispensa para atividade de baixo impacto ambiental",
			CreatedAt:   mustTime("2024-01-25T14:30:00Z"),
			UpdatedAt:   mustTime("2024-01-26T10:45:00Z"),
		},
	}
}

// SeedTechnicians returns the demo staff roster.
func SeedTechnicians() []*model.Technician {
	return []*model.Technician{
		{
			ID:                 "1",
			Name:               "Maria Santos",
			Email:              "maria.santos@ecoflow.com",
			Phone:              "(11) 99999-1234",
			RegistrationNumber: "CRQ-123456",
			Specialty:          "SIMCAR",
			Status:             "ativo",
			Location:           "São Paulo, SP",
			JoinDate:           "2023-03-15",
			Avatar:             "/placeholder-user.jpg",
			ActiveProcesses:    8,
			CompletedProcesses: 45,
			Efficiency:         92,
			MonthlyGoal:        12,
			Experience:         "5 anos",
			Certifications:     []string{"ISO 14001", "Gestão Ambiental", "SIMCAR Avançado"},
			Skills:             []string{"Licenciamento", "Análise de Solo", "Relatórios Técnicos"},
			EmergencyContact: model.EmergencyContact{
				Name:         "João Santos",
				Phone:        "(11) 88888-1234",
				Relationship: "Cônjuge",
			},
		},
		{
			ID:                 "2",
			Name:               "João Silva",
			Email:              "joao.silva@ecoflow.com",
			Phone:              "(11) 99999-5678",
			RegistrationNumber: "CREA-789012",
			Specialty:          "PEF",
			Status:             "ativo",
			Location:           "Campinas, SP",
			JoinDate:           "2023-01-20",
			Avatar:             "/placeholder-user.jpg",
			ActiveProcesses:    6,
			CompletedProcesses: 32,
			Efficiency:         88,
			MonthlyGoal:        10,
			Experience:         "7 anos",
			Certifications:     []string{"Engenheiro Florestal", "Manejo Sustentável"},
			Skills:             []string{"Exploração Florestal", "Inventário Florestal", "Planos de Manejo"},
			EmergencyContact: model.EmergencyContact{
				Name:         "Ana Silva",
				Phone:        "(11) 77777-5678",
				Relationship: "Mãe",
			},
		},
		{
			ID:                 "3",
			Name:               "Ana Costa",
			Email:              "ana.costa@ecoflow.com",
			Phone:              "(11) 99999-9012",
			RegistrationNumber: "CRQ-345678",
			Specialty:          "DAAP",
			Status:             "ativo",
			Location:           "Santos, SP",
			JoinDate:           "2023-05-10",
			Avatar:             "/placeholder-user.jpg",
			ActiveProcesses:    5,
			CompletedProcesses: 28,
			Efficiency:         85,
			MonthlyGoal:        8,
			Experience:         "3 anos",
			Certifications:     []string{"Química Ambiental", "Análise de Efluentes"},
			Skills:             []string{"Monitoramento Ambiental", "Análise Química", "DAAP"},
			EmergencyContact: model.EmergencyContact{
				Name:         "Carlos Costa",
				Phone:        "(11) 66666-9012",
				Relationship: "Pai",
			},
		},
		{
			ID:                 "4",
			Name:               "Carlos Lima",
			Email:              "carlos.lima@ecoflow.com",
			Phone:              "(11) 99999-3456",
			RegistrationNumber: "CREA-901234",
			Specialty:          "Georreferenciamento",
			Status:             "em_campo",
			Location:           "Ribeirão Preto, SP",
			JoinDate:           "2022-11-05",
			Avatar:             "/placeholder-user.jpg",
			ActiveProcesses:    4,
			CompletedProcesses: 38,
			Efficiency:         96,
			MonthlyGoal:        6,
			Experience:         "10 anos",
			Certifications:     []string{"Topografia", "GPS/GNSS", "CAR"},
			Skills:             []string{"Levantamento Topográfico", "CAR", "Georreferenciamento"},
			EmergencyContact: model.EmergencyContact{
				Name:         "Laura Lima",
				Phone:        "(11) 55555-3456",
				Relationship: "Esposa",
			},
		},
		{
			ID:                 "5",
			Name:               "Lucia Ferreira",
			Email:              "lucia.ferreira@ecoflow.com",
			Phone:              "(11) 99999-7890",
			RegistrationNumber: "CRQ-567890",
			Specialty:          "CC-SEMA",
			Status:             "ferias",
			Location:           "Sorocaba, SP",
			JoinDate:           "2023-08-12",
			Avatar:             "/placeholder-user.jpg",
			ActiveProcesses:    2,
			CompletedProcesses: 22,
			Efficiency:         79,
			MonthlyGoal:        9,
			Experience:         "2 anos",
			Certifications:     []string{"Gestão Ambiental", "Auditoria"},
			Skills:             []string{"Conformidade", "Certificação", "Auditoria Ambiental"},
			EmergencyContact: model.EmergencyContact{
				Name:         "Roberto Ferreira",
				Phone:        "(11) 44444-7890",
				Relationship: "Irmão",
			},
		},
		{
			ID:                 "6",
			Name:               "Pedro Oliveira",
			Email:              "pedro.oliveira@ecoflow.com",
			Phone:              "(11) 99999-2468",
			RegistrationNumber: "CREA-246810",
			Specialty:          "PRA",
			Status:             "ativo",
			Location:           "Bauru, SP",
			JoinDate:           "2022-09-30",
			Avatar:             "/placeholder-user.jpg",
			ActiveProcesses:    7,
			CompletedProcesses: 41,
			Efficiency:         90,
			MonthlyGoal:        11,
			Experience:         "6 anos",
			Certifications:     []string{"Recuperação de Áreas", "Bioengenharia"},
			Skills:             []string{"PRAD", "Revegetação", "Bioengenharia"},
			EmergencyContact: model.EmergencyContact{
				Name:         "Carla Oliveira",
				Phone:        "(11) 33333-2468",
				Relationship: "Esposa",
			},
		},
		{
			ID:                 "7",
			Name:               "Fernanda Costa",
			Email:              "fernanda.costa@ecoflow.com",
			Phone:              "(11) 99999-1357",
			RegistrationNumber: "CRQ-135792",
			Specialty:          "Laudos",
			Status:             "ativo",
			Location:           "Jundiaí, SP",
			JoinDate:           "2023-06-01",
			Avatar:             "/placeholder-user.jpg",
			ActiveProcesses:    9,
			CompletedProcesses: 18,
			Efficiency:         87,
			MonthlyGoal:        15,
			Experience:         "4 anos",
			Certifications:     []string{"Perícia Ambiental", "Avaliação de Impacto"},
			Skills:             []string{"Laudos Técnicos", "Perícia", "Avaliação Ambiental"},
			EmergencyContact: model.EmergencyContact{
				Name:         "Marcos Costa",
				Phone:        "(11) 22222-1357",
				Relationship: "Pai",
			},
		},
	}
}
