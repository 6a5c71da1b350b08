package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"funkdesk/backend/internal/model"
	pkgerrors "funkdesk/backend/pkg/errors"
)

// Hand-rolled in-memory repositories. They mirror the GORM implementations
// closely enough for service-level tests: gorm.ErrRecordNotFound on misses,
// ascending start-date ordering, association resolution on reads.

// ── user repo ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByName(_ context.Context, name string) (*model.User, error) {
	for _, u := range m.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── absence repo ──

type mockAbsenceRepo struct {
	requests map[string]*model.AbsenceRequest
	users    *mockUserRepo // resolves requester/decider like the Preloads do
	seq      int
}

func newMockAbsenceRepo(users *mockUserRepo) *mockAbsenceRepo {
	return &mockAbsenceRepo{
		requests: make(map[string]*model.AbsenceRequest),
		users:    users,
	}
}

func (m *mockAbsenceRepo) Create(_ context.Context, req *model.AbsenceRequest) error {
	if req.AbsenceRequestID == "" {
		m.seq++
		req.AbsenceRequestID = fmt.Sprintf("absence-%d", m.seq)
	}
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	stored := *req
	m.requests[req.AbsenceRequestID] = &stored
	return nil
}

func (m *mockAbsenceRepo) GetByID(_ context.Context, id string) (*model.AbsenceRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.resolve(r), nil
}

func (m *mockAbsenceRepo) List(_ context.Context) ([]model.AbsenceRequest, error) {
	return m.listWhere(func(*model.AbsenceRequest) bool { return true }), nil
}

func (m *mockAbsenceRepo) ListOverlapping(_ context.Context, qStart, qEnd time.Time) ([]model.AbsenceRequest, error) {
	return m.listWhere(func(r *model.AbsenceRequest) bool {
		return !r.StartDate.After(qEnd) && !r.EndDate.Before(qStart)
	}), nil
}

func (m *mockAbsenceRepo) ListCurrentAndFuture(_ context.Context, today time.Time) ([]model.AbsenceRequest, error) {
	return m.listWhere(func(r *model.AbsenceRequest) bool {
		return !r.EndDate.Before(today)
	}), nil
}

func (m *mockAbsenceRepo) Update(_ context.Context, req *model.AbsenceRequest) error {
	if _, ok := m.requests[req.AbsenceRequestID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *req
	m.requests[req.AbsenceRequestID] = &stored
	return nil
}

func (m *mockAbsenceRepo) listWhere(match func(*model.AbsenceRequest) bool) []model.AbsenceRequest {
	var result []model.AbsenceRequest
	for _, r := range m.requests {
		if match(r) {
			result = append(result, *m.resolve(r))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result
}

func (m *mockAbsenceRepo) resolve(r *model.AbsenceRequest) *model.AbsenceRequest {
	resolved := *r
	if u, ok := m.users.users[r.RequestedByID]; ok {
		resolved.RequestedBy = u
	}
	if r.ApprovedOrRejectedByID != nil {
		if u, ok := m.users.users[*r.ApprovedOrRejectedByID]; ok {
			resolved.ApprovedOrRejectedBy = u
		}
	}
	return &resolved
}

// ── news repo ──

type mockNewsRepo struct {
	items map[string]*model.News
	seq   int
}

func newMockNewsRepo() *mockNewsRepo {
	return &mockNewsRepo{items: make(map[string]*model.News)}
}

func (m *mockNewsRepo) Create(_ context.Context, news *model.News) error {
	if news.NewsID == "" {
		m.seq++
		news.NewsID = fmt.Sprintf("news-%d", m.seq)
	}
	news.CreatedAt = time.Now()
	m.items[news.NewsID] = news
	return nil
}

func (m *mockNewsRepo) GetByID(_ context.Context, id string) (*model.News, error) {
	if n, ok := m.items[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNewsRepo) List(_ context.Context) ([]model.News, error) {
	var result []model.News
	for _, n := range m.items {
		result = append(result, *n)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockNewsRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.items, id)
	return nil
}

// ── scheduled-post repo ──

type mockScheduledPostRepo struct {
	posts map[string]*model.ScheduledPost
	seq   int
}

func newMockScheduledPostRepo() *mockScheduledPostRepo {
	return &mockScheduledPostRepo{posts: make(map[string]*model.ScheduledPost)}
}

func (m *mockScheduledPostRepo) Create(_ context.Context, post *model.ScheduledPost) error {
	if post.ScheduledPostID == "" {
		m.seq++
		post.ScheduledPostID = fmt.Sprintf("post-%d", m.seq)
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	stored := *post
	m.posts[post.ScheduledPostID] = &stored
	return nil
}

func (m *mockScheduledPostRepo) GetByID(_ context.Context, id string) (*model.ScheduledPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockScheduledPostRepo) List(_ context.Context) ([]model.ScheduledPost, error) {
	var result []model.ScheduledPost
	for _, p := range m.posts {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ScheduledAt.Before(result[j].ScheduledAt)
	})
	return result, nil
}

func (m *mockScheduledPostRepo) UpdateVersioned(_ context.Context, post *model.ScheduledPost, expectedVersion int) error {
	stored, ok := m.posts[post.ScheduledPostID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != expectedVersion {
		return pkgerrors.ErrOptimisticLock
	}
	post.Version = expectedVersion + 1
	post.UpdatedAt = time.Now()
	copied := *post
	m.posts[post.ScheduledPostID] = &copied
	return nil
}

func (m *mockScheduledPostRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.posts, id)
	return nil
}

// ── application repo ──

type mockApplicationRepo struct {
	apps map[string]*model.Application
	seq  int
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[string]*model.Application)}
}

func (m *mockApplicationRepo) Create(_ context.Context, app *model.Application) error {
	if app.ApplicationID == "" {
		m.seq++
		app.ApplicationID = fmt.Sprintf("application-%d", m.seq)
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	m.apps[app.ApplicationID] = app
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	if a, ok := m.apps[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) List(_ context.Context) ([]model.Application, error) {
	var result []model.Application
	for _, a := range m.apps {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockApplicationRepo) Update(_ context.Context, app *model.Application) error {
	if _, ok := m.apps[app.ApplicationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	app.UpdatedAt = time.Now()
	m.apps[app.ApplicationID] = app
	return nil
}

func (m *mockApplicationRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.apps, id)
	return nil
}

// ── maintenance repo ──

type mockMaintenanceRepo struct {
	cfg *model.MaintenanceConfig
}

func newMockMaintenanceRepo() *mockMaintenanceRepo {
	return &mockMaintenanceRepo{
		cfg: &model.MaintenanceConfig{
			MaintenanceConfigID: "maintenance-singleton",
			Active:              false,
			UpdatedAt:           time.Now(),
		},
	}
}

func (m *mockMaintenanceRepo) Get(_ context.Context) (*model.MaintenanceConfig, error) {
	if m.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m.cfg
	return &copied, nil
}

func (m *mockMaintenanceRepo) Update(_ context.Context, cfg *model.MaintenanceConfig) error {
	cfg.UpdatedAt = time.Now()
	copied := *cfg
	m.cfg = &copied
	return nil
}
