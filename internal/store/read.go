package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/challenge"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/position"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// MoveRecord is a stored bead move.
type MoveRecord struct {
	Seq         int64        `json:"seq"`
	ChallengeID string       `json:"challenge_id,omitempty"`
	Rod         int          `json:"rod"`
	Previous    int          `json:"previous"`
	Current     int          `json:"current"`
	Action      string       `json:"action"`
	Rule        formula.Rule `json:"rule"`
	Koujue      string       `json:"koujue"`
}

// RuleCount is the number of recorded moves per rule.
type RuleCount struct {
	Rule  formula.Rule `json:"rule"`
	Count int          `json:"count"`
}

const challengeColumns = `id, kind, question, a, b, steps, target, current_step, positioning`

// GetChallenge returns one challenge by id, or ErrNotFound.
func (s *Store) GetChallenge(ctx context.Context, id string) (*challenge.Challenge, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE id = ?
	`, id)

	c, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("challenge %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListChallenges returns every stored challenge in seq order.
// Returns an empty slice (not nil) when the log is empty.
func (s *Store) ListChallenges(ctx context.Context) ([]*challenge.Challenge, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query challenges: %w", err)
	}
	defer rows.Close()

	out := []*challenge.Challenge{}
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenges: %w", err)
	}
	return out, nil
}

// MovesFor returns the moves recorded against a challenge in seq order.
// An empty challengeID selects free-practice moves.
func (s *Store) MovesFor(ctx context.Context, challengeID string) ([]MoveRecord, error) {
	query := `
		SELECT seq, challenge_id, rod, previous, current, action, rule, koujue
		FROM moves
		WHERE challenge_id = ?
		ORDER BY seq ASC
	`
	args := []any{challengeID}
	if challengeID == "" {
		query = `
		SELECT seq, challenge_id, rod, previous, current, action, rule, koujue
		FROM moves
		WHERE challenge_id IS NULL
		ORDER BY seq ASC
	`
		args = nil
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	out := []MoveRecord{}
	for rows.Next() {
		var (
			m    MoveRecord
			cid  sql.NullString
			rule string
		)
		if err := rows.Scan(&m.Seq, &cid, &m.Rod, &m.Previous, &m.Current, &m.Action, &rule, &m.Koujue); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		m.ChallengeID = cid.String
		m.Rule = formula.Rule(rule)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return out, nil
}

// RuleCounts returns how often each rule was recorded, most used first,
// ties broken by rule name.
func (s *Store) RuleCounts(ctx context.Context) ([]RuleCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rule, COUNT(*) AS n
		FROM moves
		GROUP BY rule
		ORDER BY n DESC, rule COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query rule counts: %w", err)
	}
	defer rows.Close()

	out := []RuleCount{}
	for rows.Next() {
		var (
			rc   RuleCount
			rule string
		)
		if err := rows.Scan(&rule, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan rule count: %w", err)
		}
		rc.Rule = formula.Rule(rule)
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rule counts: %w", err)
	}
	return out, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row scanner) (*challenge.Challenge, error) {
	var (
		c           challenge.Challenge
		kind        string
		steps       string
		positioning sql.NullString
	)
	err := row.Scan(&c.ID, &kind, &c.Question, &c.A, &c.B, &steps, &c.Target, &c.CurrentStep, &positioning)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan challenge: %w", err)
	}
	c.Kind = challenge.Kind(kind)

	if err := json.Unmarshal([]byte(steps), &c.Steps); err != nil {
		return nil, fmt.Errorf("challenge %s: unmarshal steps: %w", c.ID, err)
	}
	if positioning.Valid {
		var rule position.Rule
		if err := json.Unmarshal([]byte(positioning.String), &rule); err != nil {
			return nil, fmt.Errorf("challenge %s: unmarshal positioning: %w", c.ID, err)
		}
		c.Positioning = &rule
	}
	return &c, nil
}
