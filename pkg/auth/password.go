package auth

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// Hasher wraps bcrypt with a configurable cost factor. Hashing and
// verification are CPU-bound, so concurrent calls are bounded by a
// weighted semaphore sized to GOMAXPROCS to keep request goroutines
// from starving the scheduler under login bursts.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
}

// Hash returns a salted bcrypt digest. The digest is self-describing
// (algorithm, cost, salt and hash are all embedded), so two calls on the
// same input produce distinct digests that both verify.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
// bcrypt's comparison is constant-time. Returns false on any error,
// including malformed digests and cancelled contexts.
func (h *Hasher) Verify(ctx context.Context, password, digest string) bool {
	if password == "" || digest == "" {
		return false
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
