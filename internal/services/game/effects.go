package game

import (
	"context"

	"github.com/KirkDiggler/werewolf/internal/models"
	gameRepo "github.com/KirkDiggler/werewolf/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/werewolf/internal/repositories/player"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type move struct {
	playerID string
	room     models.Room
}

type notice struct {
	room    models.Room
	content string
	prompt  *models.Prompt
}

type mute struct {
	playerID string
	muted    bool
}

// effects are the platform calls produced by one transition. They are
// collected under the engine lock and delivered after it is released.
type effects struct {
	prepare []*models.Player
	moves   []move
	mutes   []mute
	notices []notice
	release bool
	record  *models.GameRecord
}

func (fx *effects) move(playerID string, room models.Room) {
	fx.moves = append(fx.moves, move{playerID: playerID, room: room})
}

func (fx *effects) mute(playerID string, muted bool) {
	fx.mutes = append(fx.mutes, mute{playerID: playerID, muted: muted})
}

func (fx *effects) notify(room models.Room, content string, prompt *models.Prompt) {
	fx.notices = append(fx.notices, notice{room: room, content: content, prompt: prompt})
}

// dispatch delivers effects in order: rooms, moves, mutes, messages, room
// cleanup and persistence. Each failure is logged and skipped.
func (e *Engine) dispatch(ctx context.Context, fx *effects) {
	if fx == nil {
		return
	}

	if len(fx.prepare) > 0 && e.platform.Rooms != nil {
		callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
		if err := e.platform.Rooms.PrepareRooms(callCtx, fx.prepare); err != nil {
			e.logger.Error("failed to prepare rooms", zap.Error(err))
		}
		cancel()
	}

	e.runMoves(ctx, fx.moves)
	e.runMutes(ctx, fx.mutes)

	// messages keep their order so announcements read in sequence
	for _, n := range fx.notices {
		callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
		if err := e.platform.Notifier.Notify(callCtx, n.room, n.content, n.prompt); err != nil {
			e.logger.Warn("delivery failed",
				zap.Error(&models.DeliveryError{PlayerID: n.room.Owner, Room: n.room, Err: err}),
			)
		}
		cancel()
	}

	if fx.release && e.platform.Rooms != nil {
		callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
		if err := e.platform.Rooms.ReleaseRooms(callCtx); err != nil {
			e.logger.Error("failed to release rooms", zap.Error(err))
		}
		cancel()
	}

	if fx.record != nil {
		e.persist(ctx, fx.record)
	}
}

// runMoves relocates players concurrently. A player who cannot be moved is
// logged and left where they are.
func (e *Engine) runMoves(ctx context.Context, moves []move) {
	if len(moves) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)
	for _, m := range moves {
		m := m
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
			defer cancel()

			if err := e.platform.Notifier.MoveTo(callCtx, m.playerID, m.room); err != nil {
				e.logger.Warn("move failed",
					zap.Error(&models.DeliveryError{PlayerID: m.playerID, Room: m.room, Err: err}),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (e *Engine) runMutes(ctx context.Context, mutes []mute) {
	if len(mutes) == 0 || e.platform.Muter == nil {
		return
	}

	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)
	for _, m := range mutes {
		m := m
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
			defer cancel()

			if err := e.platform.Muter.SetMuted(callCtx, m.playerID, m.muted); err != nil {
				e.logger.Warn("mute failed",
					zap.Bool("muted", m.muted),
					zap.Error(&models.DeliveryError{PlayerID: m.playerID, Room: models.SharedRoom(), Err: err}),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// persist stores the finished game and, unless it was stopped, each
// player's result
func (e *Engine) persist(ctx context.Context, record *models.GameRecord) {
	if e.gameRepo != nil {
		if err := e.gameRepo.SaveRecord(ctx, &gameRepo.SaveRecordInput{Record: record}); err != nil {
			e.logger.Error("failed to save game record", zap.String("game_id", record.ID), zap.Error(err))
		}
	}

	if e.playerRepo == nil || record.Outcome == models.OutcomeForced {
		return
	}

	winner := record.Outcome.Winner()
	for _, p := range record.Players {
		err := e.playerRepo.RecordResult(ctx, &playerRepo.RecordResultInput{
			GuildID:    record.GuildID,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Won:        p.Faction() == winner,
		})
		if err != nil {
			e.logger.Error("failed to record player result", zap.String("player_id", p.ID), zap.Error(err))
		}
	}
}
