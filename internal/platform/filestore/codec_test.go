package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

func mustSession(t *testing.T, group, title string) *domain.Session {
	t.Helper()
	s, err := domain.NewSession(group, title, "Monday 10:00", "chapter "+title)
	require.NoError(t, err)
	return s
}

func TestSaveLoadCollection_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []*domain.Session
	}{
		{name: "empty", items: []*domain.Session{}},
		{name: "single", items: []*domain.Session{mustSession(t, "G", "Algebra")}},
		{
			name: "many",
			items: []*domain.Session{
				mustSession(t, "G", "Algebra"),
				mustSession(t, "H", "Biology"),
				mustSession(t, "G", "Chemistry"),
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), SessionsFile)
			require.NoError(t, SaveCollection(path, KindSessions, tc.items))

			got, err := LoadCollection[*domain.Session](path, KindSessions)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.items, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveLoadCollection_PreservesNestedFields(t *testing.T) {
	t.Parallel()

	d, err := domain.NewDiscussion("G", "Exam prep")
	require.NoError(t, err)
	author := &domain.User{ID: 7, Username: "ada"}
	require.NoError(t, d.AddComment(author, "first"))
	require.NoError(t, d.AddComment(author, "second"))

	g, err := domain.NewStudyGroup("G", "group G")
	require.NoError(t, err)
	g.AddMember(3)
	g.AddMember(1)

	dir := t.TempDir()
	dPath := filepath.Join(dir, DiscussionsFile)
	gPath := filepath.Join(dir, GroupsFile)
	require.NoError(t, SaveCollection(dPath, KindDiscussions, []*domain.Discussion{d}))
	require.NoError(t, SaveCollection(gPath, KindGroups, []*domain.StudyGroup{g}))

	discussions, err := LoadCollection[*domain.Discussion](dPath, KindDiscussions)
	require.NoError(t, err)
	require.Len(t, discussions, 1)
	assert.Equal(t, d.Comments, discussions[0].Comments)
	assert.Equal(t, []string{"first", "second"}, discussions[0].CommentTexts())
	assert.Equal(t, "ada", discussions[0].Comments[1].Author)

	groups, err := LoadCollection[*domain.StudyGroup](gPath, KindGroups)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{3, 1}, groups[0].MemberIDs)
}

func TestLoadCollection_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCollection[*domain.User](filepath.Join(t.TempDir(), UsersFile), KindUsers)
	require.Error(t, err)
	assert.True(t, IsFileNotFound(err))
	assert.True(t, store.IsNotFoundError(err))
	assert.False(t, IsDecodeError(err))
}

func TestLoadCollection_InvalidContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty file", content: []byte{}},
		{name: "garbage", content: []byte("this is not a collection")},
		{name: "truncated", content: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), UsersFile)
			content := tc.content
			if content == nil {
				// Cut a valid file in half
				user := &domain.User{ID: 1, Username: "ada", HashedPassword: "x"}
				require.NoError(t, SaveCollection(path, KindUsers, []*domain.User{user}))
				full, err := os.ReadFile(path)
				require.NoError(t, err)
				content = full[:len(full)/2]
			}
			require.NoError(t, os.WriteFile(path, content, 0o644))

			_, err := LoadCollection[*domain.User](path, KindUsers)
			require.Error(t, err)
			assert.True(t, IsDecodeError(err), "expected decode error, got %v", err)
		})
	}
}

func TestLoadCollection_WrongKind(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mixed.bin")
	require.NoError(t, SaveCollection(path, KindSessions, []*domain.Session{mustSession(t, "G", "Algebra")}))

	_, err := LoadCollection[*domain.Session](path, KindResources)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, KindResources, storeErr.Entity)
	assert.Equal(t, "load", storeErr.Operation)
}

func TestSaveCollection_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", UsersFile)
	err := SaveCollection(path, KindUsers, []*domain.User{})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrWriteFailed)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveCollection_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), SessionsFile)
	require.NoError(t, SaveCollection(path, KindSessions, []*domain.Session{
		mustSession(t, "G", "Algebra"),
		mustSession(t, "G", "Biology"),
	}))
	require.NoError(t, SaveCollection(path, KindSessions, []*domain.Session{
		mustSession(t, "G", "Chemistry"),
	}))

	got, err := LoadCollection[*domain.Session](path, KindSessions)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Chemistry", got[0].Title)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(os.ErrNotExist), store.ErrFileNotFound)
	assert.ErrorIs(t, MapError(store.ErrDecode), store.ErrDecode)

	other := os.ErrPermission
	assert.Equal(t, other, MapError(other))
}
