package estoque

import (
	"fmt"
	"math"
)

// Status de saúde do estoque.
const (
	StatusCritico = "CRITICO"
	StatusBaixo   = "BAIXO"
	StatusOK      = "OK"
	StatusAlto    = "ALTO"
)

// Níveis de urgência usados como chave de ordenação (decrescente = mais urgente).
const (
	UrgenciaOK      = 0
	UrgenciaAlto    = 1
	UrgenciaBaixo   = 2
	UrgenciaCritico = 3
)

// Limites agrupa os valores de referência do classificador. Vem da
// configuração da aplicação, não de constantes escondidas, para os testes
// poderem variar os limiares.
type Limites struct {
	MinimoPadrao  int     // substitui estoque_minimo quando <= 0
	MaximoPadrao  int     // substitui estoque_maximo quando <= 0
	FracaoCritica float64 // fração do mínimo abaixo da qual o status é CRITICO
}

// LimitesPadrao são os valores de referência herdados do sistema original:
// mínimo 300, máximo 1000, crítico abaixo de 50% do mínimo.
func LimitesPadrao() Limites {
	return Limites{MinimoPadrao: 300, MaximoPadrao: 1000, FracaoCritica: 0.5}
}

// Status é o resultado do classificador para um item (efêmero, recalculado
// a cada leitura; nunca persistido).
type Status struct {
	Status             string
	QuantidadeAtual    int
	EstoqueMinimo      int // mínimo efetivo (após padrão)
	EstoqueMaximo      int // máximo efetivo (após padrão)
	Percentual         float64 // atual/mínimo × 100, arredondado a 2 casas
	RequerAcao         bool
	Mensagem           string
	NivelUrgencia      int
	QuantidadeReposicao int // sugerida para repor até o máximo; 0 quando OK/ALTO
}

// Classificar avalia a saúde do estoque de um item. Função pura.
//
// A ordem de avaliação é carga-portante e deve ser preservada: CRITICO e
// BAIXO são verificados antes de ALTO, então um item zerado com máximo
// patologicamente pequeno é CRITICO, nunca ALTO.
func Classificar(lim Limites, atual, minimo, maximo int) Status {
	if minimo <= 0 {
		minimo = lim.MinimoPadrao
	}
	if maximo <= 0 {
		maximo = lim.MaximoPadrao
	}

	percentual := 0.0
	if minimo != 0 {
		percentual = math.Round(float64(atual)/float64(minimo)*100*100) / 100
	}

	s := Status{
		QuantidadeAtual: atual,
		EstoqueMinimo:   minimo,
		EstoqueMaximo:   maximo,
		Percentual:      percentual,
	}

	limiteCritico := float64(minimo) * lim.FracaoCritica
	switch {
	case float64(atual) < limiteCritico:
		s.Status = StatusCritico
		s.RequerAcao = true
		s.NivelUrgencia = UrgenciaCritico
		s.Mensagem = fmt.Sprintf("CRÍTICO: Estoque abaixo de %.0f%% do mínimo (%d/%d)", lim.FracaoCritica*100, atual, minimo)
	case atual < minimo:
		s.Status = StatusBaixo
		s.RequerAcao = true
		s.NivelUrgencia = UrgenciaBaixo
		s.Mensagem = fmt.Sprintf("BAIXO: Estoque abaixo do mínimo (%d/%d)", atual, minimo)
	case atual > maximo:
		s.Status = StatusAlto
		s.RequerAcao = true
		s.NivelUrgencia = UrgenciaAlto
		s.Mensagem = fmt.Sprintf("ALTO: Estoque acima do máximo (%d/%d)", atual, maximo)
	default:
		s.Status = StatusOK
		s.Mensagem = fmt.Sprintf("OK: Estoque dentro dos limites (%d)", atual)
	}

	// Reposição só faz sentido quando falta estoque; para OK/ALTO é 0 por definição.
	if s.Status == StatusCritico || s.Status == StatusBaixo {
		if rep := maximo - atual; rep > 0 {
			s.QuantidadeReposicao = rep
		}
	}
	return s
}
