package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"
)

// Fixed status colors of the published livemap.
const (
	corDisponivel = "#28a745"
	corReservado  = "#ffc107"
	corVendido    = "#007bff"
	corBloqueado  = "#dc3545"
	corPadrao     = "#CCCCCC"
)

type ILivemapUseCase interface {
	// Run processes every ATIVO loteamento flagged stale. Failures on one
	// loteamento are logged and do not abort the others; it returns how many
	// livemaps were actually republished.
	Run(ctx context.Context) (int, error)
}

// LivemapUseCase is the materializer: it joins the overlay geometry with the
// current lot ledger, renders the composite and republishes it, clearing the
// stale flag only after a successful publish so a failed cycle retries on
// the next run.
type LivemapUseCase struct {
	loteamentos interfaces.ILoteamentoRepository
	mapas       interfaces.IMapaRepository
	lotes       interfaces.ILoteRepository
	renderer    interfaces.ILivemapRenderer
	storage     interfaces.IObjectStorage
}

var _ ILivemapUseCase = (*LivemapUseCase)(nil)

func NewLivemapUseCase(
	loteamentos interfaces.ILoteamentoRepository,
	mapas interfaces.IMapaRepository,
	lotes interfaces.ILoteRepository,
	renderer interfaces.ILivemapRenderer,
	storage interfaces.IObjectStorage,
) *LivemapUseCase {
	return &LivemapUseCase{
		loteamentos: loteamentos,
		mapas:       mapas,
		lotes:       lotes,
		renderer:    renderer,
		storage:     storage,
	}
}

func (u *LivemapUseCase) Run(ctx context.Context) (int, error) {
	pendentes, err := u.loteamentos.ListDirtyAtivos(ctx)
	if err != nil {
		return 0, err
	}

	publicados := 0
	for _, loteamento := range pendentes {
		if err := u.processar(ctx, loteamento); err != nil {
			// Leave the flag untouched; the next cycle retries.
			log.Printf("[livemap][usecase] falha ao processar loteamento_id=%s nome=%q err=%v", loteamento.ID, loteamento.Nome, err)
			continue
		}
		publicados++
	}
	if len(pendentes) > 0 {
		log.Printf("[livemap][usecase] ciclo concluído pendentes=%d publicados=%d", len(pendentes), publicados)
	}
	return publicados, nil
}

func (u *LivemapUseCase) processar(ctx context.Context, loteamento entities.Loteamento) error {
	mapa, err := u.mapas.GetByLoteamentoID(ctx, loteamento.ID)
	if err != nil {
		return err
	}
	if mapa.ID == "" || mapa.MapaVirtual == "" {
		// Nothing configured to render over; stay stale until an overlay
		// shows up.
		log.Printf("[livemap][usecase] loteamento sem mapa virtual configurado loteamento_id=%s", loteamento.ID)
		return nil
	}

	lotes, err := u.lotes.ListByLoteamento(ctx, loteamento.ID, false)
	if err != nil {
		return err
	}
	porQuadraNumero := make(map[string]entities.Lote, len(lotes))
	for _, lote := range lotes {
		porQuadraNumero[lote.Quadra+"/"+lote.Lote] = lote
	}

	itens := make([]interfaces.RenderLote, 0, len(mapa.Lotes))
	for _, item := range mapa.Lotes {
		if item.Width <= 0 || item.Height <= 0 {
			continue
		}
		render := interfaces.RenderLote{
			X:      item.X,
			Y:      item.Y,
			Width:  item.Width,
			Height: item.Height,
			Cor:    item.Cor,
			Label:  fmt.Sprintf("Q%s L%s", entities.Pad3(item.Quadra), entities.Pad3(item.Numero)),
		}
		if render.Cor == "" {
			render.Cor = corPadrao
		}
		if lote, ok := porQuadraNumero[entities.Pad3(item.Quadra)+"/"+entities.Pad3(item.Numero)]; ok {
			render.Cor, render.Situacao = corESituacao(lote.Situacao)
		}
		itens = append(itens, render)
	}

	png, err := u.renderer.Compose(ctx, mapa.MapaVirtual, itens)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("mapas-virtuais/%s.png", loteamento.ID)
	// Overwrite semantics: delete first, a missing object counts as deleted.
	if err := u.storage.Delete(ctx, path); err != nil {
		return err
	}
	if err := u.storage.Save(ctx, path, png, "image/png"); err != nil {
		return err
	}
	url, err := u.storage.MakePublic(ctx, path)
	if err != nil {
		return err
	}

	// Only a confirmed publish clears the flag.
	if err := u.loteamentos.UpdateLivemap(ctx, loteamento.ID, url, time.Now().UTC()); err != nil {
		return err
	}
	log.Printf("[livemap][usecase] livemap publicado loteamento_id=%s nome=%q url=%s", loteamento.ID, loteamento.Nome, url)
	return nil
}

func corESituacao(s entities.LoteSituacao) (string, string) {
	switch s {
	case entities.LoteSituacaoVendido:
		return corVendido, "Vendido"
	case entities.LoteSituacaoReservado:
		return corReservado, "Reservado"
	case entities.LoteSituacaoBloqueado:
		return corBloqueado, "Bloqueado"
	case entities.LoteSituacaoDisponivel:
		return corDisponivel, "Disponível"
	}
	return corPadrao, ""
}
