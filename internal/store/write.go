package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/challenge"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
)

// WriteChallenge records a generated challenge and returns its seq.
// Uses ON CONFLICT(id) DO NOTHING: writing the same challenge twice keeps
// the first record and returns its stored seq.
func (s *Store) WriteChallenge(ctx context.Context, c *challenge.Challenge) (int64, error) {
	steps, err := json.Marshal(c.Steps)
	if err != nil {
		return 0, fmt.Errorf("write challenge: marshal steps: %w", err)
	}

	var positioning sql.NullString
	if c.Positioning != nil {
		b, err := json.Marshal(c.Positioning)
		if err != nil {
			return 0, fmt.Errorf("write challenge: marshal positioning: %w", err)
		}
		positioning = sql.NullString{String: string(b), Valid: true}
	}

	seq := s.clock.Next()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO challenges
		(id, kind, question, a, b, steps, target, current_step, positioning, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		c.ID,
		string(c.Kind),
		c.Question,
		c.A,
		c.B,
		string(steps),
		c.Target,
		c.CurrentStep,
		positioning,
		seq,
	)
	if err != nil {
		return 0, fmt.Errorf("write challenge: %w", err)
	}

	var stored int64
	if err := s.db.QueryRowContext(ctx, `SELECT seq FROM challenges WHERE id = ?`, c.ID).Scan(&stored); err != nil {
		return 0, fmt.Errorf("write challenge: read seq: %w", err)
	}
	return stored, nil
}

// UpdateProgress stores the learner's current step for a challenge.
func (s *Store) UpdateProgress(ctx context.Context, id string, currentStep int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE challenges SET current_step = ? WHERE id = ?
	`, currentStep, id)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update progress: %w", ErrNotFound)
	}
	return nil
}

// WriteMove records a classified bead move and returns its seq.
// challengeID may be empty for free practice; otherwise it must reference a
// stored challenge (foreign key).
func (s *Store) WriteMove(ctx context.Context, challengeID string, m abacus.Move, f formula.Formula) (int64, error) {
	var cid sql.NullString
	if challengeID != "" {
		cid = sql.NullString{String: challengeID, Valid: true}
	}

	seq := s.clock.Next()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO moves
		(seq, challenge_id, rod, previous, current, action, rule, koujue)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		seq,
		cid,
		m.Rod,
		m.Previous,
		m.Current,
		f.Action,
		string(f.Rule),
		f.Koujue,
	)
	if err != nil {
		return 0, fmt.Errorf("write move: %w", err)
	}

	return seq, nil
}
