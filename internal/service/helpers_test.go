package service_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/mocks"
	"github.com/phrazzld/study-coordinator/internal/platform/filestore"
	"github.com/phrazzld/study-coordinator/internal/platform/logger"
	"github.com/phrazzld/study-coordinator/internal/service"
	"github.com/phrazzld/study-coordinator/internal/service/auth"
)

// testEnv wires every service to file stores in a temporary directory.
type testEnv struct {
	stores      *filestore.Stores
	emitter     *mocks.MockEventEmitter
	logs        *logger.TestLogBuffer
	accounts    service.AccountService
	groups      service.GroupService
	sessions    service.SessionService
	resources   service.ResourceService
	discussions service.DiscussionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log, buf := logger.GetTestLogger(t)
	stores, err := filestore.Open(t.TempDir(), log)
	require.NoError(t, err)

	emitter := mocks.NewAcceptingEventEmitter()
	hasher := auth.NewBcrypt(bcrypt.MinCost)

	return &testEnv{
		stores:      stores,
		emitter:     emitter,
		logs:        buf,
		accounts:    service.NewAccountService(stores.Users, hasher, hasher, emitter, log),
		groups:      service.NewGroupService(stores.Groups, stores.Users, emitter, log),
		sessions:    service.NewSessionService(stores.Sessions, emitter, log),
		resources:   service.NewResourceService(stores.Resources, emitter, log),
		discussions: service.NewDiscussionService(stores.Discussions, emitter, log),
	}
}

// register adds a user with the password "pw-<username>".
func (e *testEnv) register(t *testing.T, id int, username string) *domain.User {
	t.Helper()
	user, err := e.accounts.Register(context.Background(), service.RegisterInput{
		ID:       id,
		Username: username,
		Password: "pw-" + username,
		Name:     "Name" + username,
		Surname:  "Surname" + username,
	})
	require.NoError(t, err)
	return user
}

// group creates a study group with the given members.
func (e *testEnv) group(t *testing.T, name string, ids ...int) *service.GroupCreation {
	t.Helper()
	created, err := e.groups.CreateGroup(context.Background(), service.CreateGroupInput{
		Name:        name,
		Description: "about " + name,
		MemberIDs:   ids,
	})
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string {
	return &s
}

func removeDir(dir string) error {
	return os.RemoveAll(dir)
}
