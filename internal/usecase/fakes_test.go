package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
)

// In-memory fakes for every usecase dependency. They keep just enough state
// to observe the side effects the usecases are responsible for.

type fakeUserRepo struct {
	users      map[string]*entity.User
	createErr  error
	failLookup bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if r.failLookup {
		return nil, errors.New("store down")
	}
	u, ok := r.users[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.failLookup {
		return nil, errors.New("store down")
	}
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *fakeUserRepo) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, contract.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return contract.ErrNotFound
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.CreatedAt.Before(from) && u.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeCourseRepo struct {
	courses   map[string]*entity.Course
	getCalls  int
	saveCalls int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*entity.Course{}}
}

func (r *fakeCourseRepo) CreateCourse(ctx context.Context, course *entity.Course) error {
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	r.getCalls++
	c, ok := r.courses[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCourseRepo) GetAllCoursesStripped(ctx context.Context) ([]entity.Course, error) {
	out := make([]entity.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c.Stripped())
	}
	return out, nil
}

func (r *fakeCourseRepo) GetAllCourses(ctx context.Context) ([]entity.Course, error) {
	out := make([]entity.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) UpdateCourseFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		c.Name = name
	}
	if desc, ok := fields["description"].(string); ok {
		c.Description = desc
	}
	if price, ok := fields["price"].(float64); ok {
		c.Price = price
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCourseRepo) SaveCourse(ctx context.Context, course *entity.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return contract.ErrNotFound
	}
	r.saveCalls++
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(ctx context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, c := range r.courses {
		if !c.CreatedAt.Before(from) && c.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	deleteErr     error
}

func (r *fakeNotificationRepo) CreateNotification(ctx context.Context, n *entity.Notification) error {
	clone := *n
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *fakeNotificationRepo) GetNotificationByID(ctx context.Context, id string) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *fakeNotificationRepo) GetAllNotifications(ctx context.Context) ([]entity.Notification, error) {
	out := make([]entity.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		out = append(out, *n)
	}
	return out, nil
}

func (r *fakeNotificationRepo) UpdateNotification(ctx context.Context, n *entity.Notification) error {
	for _, existing := range r.notifications {
		if existing.ID == n.ID {
			existing.Status = n.Status
			return nil
		}
	}
	return contract.ErrNotFound
}

func (r *fakeNotificationRepo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var kept []*entity.Notification
	var deleted int64
	for _, n := range r.notifications {
		if n.Status == entity.NotificationRead && n.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.notifications = kept
	return deleted, nil
}

func (r *fakeNotificationRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, notification := range r.notifications {
		if !notification.CreatedAt.Before(from) && notification.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeSessionCache struct {
	sessions map[string]*entity.User
	setCalls int
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: map[string]*entity.User{}}
}

func (c *fakeSessionCache) GetSession(ctx context.Context, userID string) (*entity.User, bool, error) {
	u, ok := c.sessions[userID]
	if !ok {
		return nil, false, nil
	}
	clone := *u
	return &clone, true, nil
}

func (c *fakeSessionCache) SetSession(ctx context.Context, user *entity.User) error {
	c.setCalls++
	clone := *user
	c.sessions[user.ID] = &clone
	return nil
}

func (c *fakeSessionCache) DeleteSession(ctx context.Context, userID string) error {
	delete(c.sessions, userID)
	return nil
}

type fakeCourseCache struct {
	courses        map[string]*entity.Course
	all            []entity.Course
	allSet         bool
	invalidateAlls int
}

func newFakeCourseCache() *fakeCourseCache {
	return &fakeCourseCache{courses: map[string]*entity.Course{}}
}

func (c *fakeCourseCache) GetCourse(ctx context.Context, courseID string) (*entity.Course, bool, error) {
	course, ok := c.courses[courseID]
	if !ok {
		return nil, false, nil
	}
	clone := *course
	return &clone, true, nil
}

func (c *fakeCourseCache) SetCourse(ctx context.Context, course *entity.Course) error {
	clone := *course
	c.courses[course.ID] = &clone
	return nil
}

func (c *fakeCourseCache) DeleteCourse(ctx context.Context, courseID string) error {
	delete(c.courses, courseID)
	return nil
}

func (c *fakeCourseCache) GetAllCourses(ctx context.Context) ([]entity.Course, bool, error) {
	if !c.allSet {
		return nil, false, nil
	}
	return c.all, true, nil
}

func (c *fakeCourseCache) SetAllCourses(ctx context.Context, courses []entity.Course) error {
	c.all = courses
	c.allSet = true
	return nil
}

func (c *fakeCourseCache) InvalidateAllCourses(ctx context.Context) error {
	c.all = nil
	c.allSet = false
	c.invalidateAlls++
	return nil
}

// fakeTokenService issues parseable strings instead of signed tokens.
type fakeTokenService struct {
	pending map[string]pendingEntry
	seq     int
}

type pendingEntry struct {
	user entity.PendingUser
	code string
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{pending: map[string]pendingEntry{}}
}

func (t *fakeTokenService) GenerateActivationToken(pending entity.PendingUser, code string) (string, error) {
	t.seq++
	token := fmt.Sprintf("activation-%d", t.seq)
	t.pending[token] = pendingEntry{user: pending, code: code}
	return token, nil
}

func (t *fakeTokenService) ParseActivationToken(token string) (*entity.PendingUser, string, error) {
	entry, ok := t.pending[token]
	if !ok {
		return nil, "", errors.New("invalid token")
	}
	user := entry.user
	return &user, entry.code, nil
}

func (t *fakeTokenService) GenerateAccessToken(userID string) (string, error) {
	t.seq++
	return fmt.Sprintf("access-%s-%d", userID, t.seq), nil
}

func (t *fakeTokenService) GenerateRefreshToken(userID string) (string, error) {
	t.seq++
	return fmt.Sprintf("refresh-%s-%d", userID, t.seq), nil
}

func (t *fakeTokenService) ParseAccessToken(token string) (string, error) {
	return parseFakeToken(token, "access-")
}

func (t *fakeTokenService) ParseRefreshToken(token string) (string, error) {
	return parseFakeToken(token, "refresh-")
}

func parseFakeToken(token, prefix string) (string, error) {
	if !strings.HasPrefix(token, prefix) {
		return "", errors.New("invalid token")
	}
	rest := strings.TrimPrefix(token, prefix)
	idx := strings.LastIndex(rest, "-")
	if idx < 0 {
		return "", errors.New("invalid token")
	}
	return rest[:idx], nil
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeMailDispatcher struct {
	jobs       []contract.MailJob
	enqueueErr error
}

func (d *fakeMailDispatcher) Enqueue(ctx context.Context, job contract.MailJob) error {
	if d.enqueueErr != nil {
		return d.enqueueErr
	}
	d.jobs = append(d.jobs, job)
	return nil
}

type fakeImageService struct {
	uploads   []string
	destroyed []string
}

func (s *fakeImageService) Upload(ctx context.Context, data, folder string) (*contract.UploadedImage, error) {
	s.uploads = append(s.uploads, folder)
	return &contract.UploadedImage{
		PublicID: fmt.Sprintf("%s/img-%d", folder, len(s.uploads)),
		URL:      fmt.Sprintf("https://img.example/%s/%d", folder, len(s.uploads)),
	}, nil
}

func (s *fakeImageService) Destroy(ctx context.Context, publicID string) error {
	s.destroyed = append(s.destroyed, publicID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string                   { return "http://localhost:8080" }
func (fakeConfig) GetAccessTokenExpiry() time.Duration     { return 10 * time.Minute }
func (fakeConfig) GetRefreshTokenExpiry() time.Duration    { return 72 * time.Hour }
func (fakeConfig) GetActivationTokenExpiry() time.Duration { return 5 * time.Minute }
func (fakeConfig) GetCookieDomain() string                 { return "localhost" }
func (fakeConfig) GetCookieSecure() bool                   { return false }

type fakeValidator struct {
	rejectEmail    bool
	rejectPassword bool
}

func (v fakeValidator) ValidateEmail(email string) error {
	if v.rejectEmail || !strings.Contains(email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

func (v fakeValidator) ValidatePasswordStrength(password string) error {
	if v.rejectPassword || len(password) < 8 {
		return errors.New("password too weak")
	}
	return nil
}

// fakeUUIDGen issues sequential ids and treats anything with a "bad-" prefix
// as malformed.
type fakeUUIDGen struct {
	seq int
}

func (g *fakeUUIDGen) NewUUID() string {
	g.seq++
	return fmt.Sprintf("id-%d", g.seq)
}

func (g *fakeUUIDGen) IsValid(s string) bool {
	return s != "" && !strings.HasPrefix(s, "bad-")
}

type fakeRandomGen struct{}

func (fakeRandomGen) GenerateRandomToken(n int) (string, error) { return "token", nil }
func (fakeRandomGen) GenerateActivationCode() (string, error)   { return "1234", nil }
