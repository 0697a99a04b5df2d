package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
	"github.com/phrazzld/study-coordinator/internal/mocks"
	"github.com/phrazzld/study-coordinator/internal/platform/filestore"
	"github.com/phrazzld/study-coordinator/internal/service"
	"github.com/phrazzld/study-coordinator/internal/store"
)

func TestDiscussionService_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	ada := env.register(t, 1, "ada")
	bob := env.register(t, 2, "bob")
	env.group(t, "G", 1, 2)

	discussion, err := env.discussions.AddDiscussion(ctx, ada, "Exam prep")
	require.NoError(t, err)
	assert.Empty(t, discussion.Comments)

	_, err = env.discussions.AddComment(ctx, bob, "exam PREP", "first")
	require.NoError(t, err)
	_, err = env.discussions.AddComment(ctx, ada, "Exam prep", "second")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, discussion.CommentTexts())
	assert.Equal(t, "bob", discussion.Comments[0].Author)
	assert.Equal(t, 1, discussion.Comments[1].AuthorID)

	_, err = env.discussions.AddComment(ctx, ada, "Exam prep", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
	assert.Len(t, discussion.Comments, 2)

	renamed, err := env.discussions.EditDiscussionTopic(ctx, bob, "exam prep", "Final exam")
	require.NoError(t, err)
	assert.Same(t, discussion, renamed)
	assert.Equal(t, "Final exam", discussion.Topic)
	assert.Len(t, discussion.Comments, 2, "renaming keeps comments")

	_, err = env.discussions.EditDiscussionTopic(ctx, bob, "Final exam", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Final exam", discussion.Topic)

	for _, eventType := range []string{
		events.TypeDiscussionCreated,
		events.TypeDiscussionCommented,
		events.TypeDiscussionRenamed,
	} {
		env.emitter.AssertCalled(t, "EmitEvent", mock.Anything, mocks.EventOfType(eventType))
	}

	reopened, err := filestore.Open(env.stores.Dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	reopened.LoadAll(ctx)
	stored, err := reopened.Discussions.FindByTopic("G", "final exam")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, stored.CommentTexts())
	assert.Equal(t, "bob", stored.Comments[0].Author)
}

func TestDiscussionService_CommentIsGroupScoped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	ada := env.register(t, 1, "ada")
	bob := env.register(t, 2, "bob")
	env.group(t, "G", 1)
	env.group(t, "H", 2)

	discussion, err := env.discussions.AddDiscussion(ctx, ada, "Secrets")
	require.NoError(t, err)

	_, err = env.discussions.AddComment(ctx, bob, "Secrets", "peek")
	assert.ErrorIs(t, err, store.ErrDiscussionNotFound)
	assert.Empty(t, discussion.Comments)

	list, err := env.discussions.ListDiscussions(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = env.discussions.ListDiscussions(ctx, ada)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDiscussionService_RequiresGroup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	loner := env.register(t, 1, "loner")

	_, err := env.discussions.AddDiscussion(ctx, loner, "Topic")
	assert.ErrorIs(t, err, service.ErrNoGroup)
	_, err = env.discussions.FindDiscussion(ctx, loner, "Topic")
	assert.ErrorIs(t, err, service.ErrNoGroup)
	_, err = env.discussions.AddComment(ctx, loner, "Topic", "hi")
	assert.ErrorIs(t, err, service.ErrNoGroup)
	_, err = env.discussions.EditDiscussionTopic(ctx, loner, "Topic", "New")
	assert.ErrorIs(t, err, service.ErrNoGroup)
}

func TestService_SaveFailureKeepsInMemoryState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	ada := env.register(t, 1, "ada")
	env.group(t, "G", 1)

	// Point the stores at a directory that no longer exists
	require.NoError(t, removeDir(env.stores.Dir))

	discussion, err := env.discussions.AddDiscussion(ctx, ada, "Offline")
	require.NoError(t, err)
	assert.NotNil(t, discussion)

	list, err := env.discussions.ListDiscussions(ctx, ada)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Contains(t, env.logs.String(), "failed to persist collection")
}
