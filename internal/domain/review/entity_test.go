//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"vouch-backend/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	for _, v := range []int{1, 2, 3, 4, 5} {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Value())
	}

	for _, v := range []int{0, -1, 6, 100} {
		_, err := review.NewRating(v)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	}
}

func TestNewComment(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		c, err := review.NewComment("  great spot  ")
		require.NoError(t, err)
		assert.Equal(t, "great spot", c.String())
	})

	t.Run("rejects empty and whitespace-only", func(t *testing.T) {
		for _, s := range []string{"", "   ", "\n\t"} {
			_, err := review.NewComment(s)
			assert.ErrorIs(t, err, review.ErrEmptyComment)
		}
	})

	t.Run("rejects over-length comment", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength+1))
		assert.ErrorIs(t, err, review.ErrCommentTooLong)

		_, err = review.NewComment(strings.Repeat("a", review.MaxCommentLength))
		assert.NoError(t, err)
	})
}

func TestNewReview(t *testing.T) {
	now := time.Now()

	t.Run("assigns an id when none given", func(t *testing.T) {
		rev, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), uuid.New(), 4, "solid", now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rev.ID())
		assert.Equal(t, 4, rev.Rating().Value())
		assert.Equal(t, "solid", rev.Comment().String())
	})

	t.Run("propagates rating validation", func(t *testing.T) {
		_, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), uuid.New(), 0, "solid", now)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})

	t.Run("propagates comment validation", func(t *testing.T) {
		_, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), uuid.New(), 4, " ", now)
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})
}
