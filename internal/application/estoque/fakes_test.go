package estoque_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	domestoque "github.com/rlourenzo/almoxarifado-api/internal/domain/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// Fakes em memória para os testes dos casos de uso. As falhas dos casos de
// uso acontecem antes de qualquer escrita, então o TxRunner fake não precisa
// simular rollback.

type fakeItemRepo struct {
	itens map[string]*entity.Item
}

func newFakeItemRepo(itens ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{itens: map[string]*entity.Item{}}
	for _, i := range itens {
		r.itens[i.ID] = i
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.Item) error { r.itens[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.itens[id], nil
}
func (r *fakeItemRepo) GetByCodigo(codigo string) (*entity.Item, error) {
	for _, i := range r.itens {
		if i.Codigo == codigo {
			return i, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.itens[id], nil }
func (r *fakeItemRepo) Update(item *entity.Item) error              { r.itens[item.ID] = item; return nil }
func (r *fakeItemRepo) UpdateQuantidade(id string, quantidade int) error {
	r.itens[id].QuantidadeAtual = quantidade
	return nil
}
func (r *fakeItemRepo) List(string, bool, int, int) ([]*entity.Item, error) {
	return r.ListAtivos()
}
func (r *fakeItemRepo) ListAtivos() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.itens))
	for _, i := range r.itens {
		if i.Ativo {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Codigo < out[b].Codigo })
	return out, nil
}
func (r *fakeItemRepo) Desativar(id string) error {
	r.itens[id].Ativo = false
	return nil
}

type fakeMovRepo struct {
	movs []*entity.Movimentacao
}

func (r *fakeMovRepo) Create(mov *entity.Movimentacao) error {
	r.movs = append(r.movs, mov)
	return nil
}
func (r *fakeMovRepo) GetByID(id string) (*entity.Movimentacao, error) {
	for _, m := range r.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeMovRepo) Update(mov *entity.Movimentacao) error {
	for i, m := range r.movs {
		if m.ID == mov.ID {
			r.movs[i] = mov
		}
	}
	return nil
}
func (r *fakeMovRepo) Delete(id string) error {
	out := r.movs[:0]
	for _, m := range r.movs {
		if m.ID != id {
			out = append(out, m)
		}
	}
	r.movs = out
	return nil
}
func (r *fakeMovRepo) List(itemID string, _, _ *time.Time, _, _ int) ([]*entity.Movimentacao, error) {
	return r.ListAllByItem(itemID)
}
func (r *fakeMovRepo) ListAllByItem(itemID string) ([]*entity.Movimentacao, error) {
	out := []*entity.Movimentacao{}
	for _, m := range r.movs {
		if itemID == "" || m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRetiradaRepo struct {
	rets map[string]*entity.RetiradaTemporaria
}

func newFakeRetiradaRepo() *fakeRetiradaRepo {
	return &fakeRetiradaRepo{rets: map[string]*entity.RetiradaTemporaria{}}
}

func (r *fakeRetiradaRepo) Create(ret *entity.RetiradaTemporaria) error {
	r.rets[ret.ID] = ret
	return nil
}
func (r *fakeRetiradaRepo) GetByID(id string) (*entity.RetiradaTemporaria, error) {
	return r.rets[id], nil
}
func (r *fakeRetiradaRepo) GetForUpdate(id string) (*entity.RetiradaTemporaria, error) {
	return r.rets[id], nil
}
func (r *fakeRetiradaRepo) Update(ret *entity.RetiradaTemporaria) error {
	r.rets[ret.ID] = ret
	return nil
}
func (r *fakeRetiradaRepo) List(status string, atrasadasAte *time.Time, _, _ int) ([]*entity.RetiradaTemporaria, error) {
	out := []*entity.RetiradaTemporaria{}
	for _, ret := range r.rets {
		if status != "" && ret.Status != status {
			continue
		}
		if atrasadasAte != nil && !ret.EstaAtrasada(*atrasadasAte) {
			continue
		}
		out = append(out, ret)
	}
	return out, nil
}

// única retirada registrada; falha o teste se houver mais de uma
func (r *fakeRetiradaRepo) unica() *entity.RetiradaTemporaria {
	if len(r.rets) != 1 {
		return nil
	}
	for _, ret := range r.rets {
		return ret
	}
	return nil
}

type fakeSolicitacaoRepo struct {
	sols map[string]*entity.Solicitacao
}

func newFakeSolicitacaoRepo() *fakeSolicitacaoRepo {
	return &fakeSolicitacaoRepo{sols: map[string]*entity.Solicitacao{}}
}

func (r *fakeSolicitacaoRepo) Create(s *entity.Solicitacao) error { r.sols[s.ID] = s; return nil }
func (r *fakeSolicitacaoRepo) GetByID(id string) (*entity.Solicitacao, error) {
	return r.sols[id], nil
}
func (r *fakeSolicitacaoRepo) Update(s *entity.Solicitacao) error { r.sols[s.ID] = s; return nil }
func (r *fakeSolicitacaoRepo) List(solicitanteID, status string, _, _ int) ([]*entity.Solicitacao, error) {
	out := []*entity.Solicitacao{}
	for _, s := range r.sols {
		if solicitanteID != "" && s.SolicitanteID != solicitanteID {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// fakeTxRunner entrega os mesmos repositórios em toda chamada, sem transação
// real.
type fakeTxRunner struct {
	movRepo         *fakeMovRepo
	itemRepo        *fakeItemRepo
	retiradaRepo    *fakeRetiradaRepo
	solicitacaoRepo *fakeSolicitacaoRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	itemRepo repository.ItemRepository,
	retiradaRepo repository.RetiradaRepository,
	solicitacaoRepo repository.SolicitacaoRepository,
) error) error {
	return fn(tx.movRepo, tx.itemRepo, tx.retiradaRepo, tx.solicitacaoRepo)
}

// fakeValoracaoRepo aplica a mesma dobra do repositório SQL sobre o razão em
// memória, usando o valor unitário corrente de cada item.
type fakeValoracaoRepo struct {
	movRepo  *fakeMovRepo
	itemRepo *fakeItemRepo
}

func (r *fakeValoracaoRepo) ValorEstoqueEm(_ context.Context, corte time.Time, categoria string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movRepo.movs {
		if m.Data.After(corte) {
			continue
		}
		item := r.itemRepo.itens[m.ItemID]
		if categoria != "" && item.Categoria != categoria {
			continue
		}
		total = total.Add(domestoque.ValorMovimento(m.Tipo, m.Quantidade, item.ValorUnitario))
	}
	return total, nil
}

func (r *fakeValoracaoRepo) ComprasNoPeriodo(_ context.Context, inicio, fim time.Time, categoria string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movRepo.movs {
		if m.Tipo != entity.TipoEntrada || m.Data.Before(inicio) || m.Data.After(fim) {
			continue
		}
		item := r.itemRepo.itens[m.ItemID]
		if categoria != "" && item.Categoria != categoria {
			continue
		}
		total = total.Add(decimal.NewFromInt(int64(m.Quantidade)).Mul(item.ValorUnitario))
	}
	return total, nil
}

func (r *fakeValoracaoRepo) Categorias(context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, i := range r.itemRepo.itens {
		if i.Categoria != "" && !seen[i.Categoria] {
			seen[i.Categoria] = true
			out = append(out, i.Categoria)
		}
	}
	sort.Strings(out)
	return out, nil
}
