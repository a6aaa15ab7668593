package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/challenge"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/store"
)

// errDatabaseNotFound marks a practice log that must already exist.
var errDatabaseNotFound = errors.New("database not found")

// openStore opens the practice log at path. With mustExist a missing file is
// reported instead of created.
func openStore(path string, mustExist bool) (*store.Store, error) {
	if mustExist {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, errDatabaseNotFound)
		}
	}
	return store.Open(path)
}

// storeErrorCode maps store failures to error codes.
func storeErrorCode(err error) string {
	if errors.Is(err, errDatabaseNotFound) || errors.Is(err, store.ErrNotFound) {
		return ErrCodeNotFound
	}
	return ErrCodeStore
}

// loadChallenge opens the log at path and fetches challenge id. The caller
// closes the returned store.
func loadChallenge(ctx context.Context, path, id string) (*store.Store, *challenge.Challenge, error) {
	st, err := openStore(path, true)
	if err != nil {
		return nil, nil, err
	}
	c, err := st.GetChallenge(ctx, id)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, c, nil
}
