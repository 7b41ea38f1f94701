package book

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcollection/pkg/metrics"
	"github.com/xiebiao/bookcollection/pkg/tracing"
)

const tracerName = "bookcollection/book"

// Service 图书领域服务接口
// 设计说明:
// 1. 每个操作都是 读取全部 → 计算 → (可能)整体写回 → 包装为Result
// 2. 所有错误在服务边界转换为Result,调用方只需判断Status
type Service interface {
	// GetBooks 查询全部图书
	GetBooks(ctx context.Context) Result[[]*Book]

	// GetBook 根据ID查询图书
	// 不存在时返回StatusNotFound
	GetBook(ctx context.Context, id int) Result[*Book]

	// AddBook 新增图书,ID由服务分配
	AddBook(ctx context.Context, fields Fields) Result[*Book]

	// UpdateBook 覆盖图书的书名、作者、年份
	// 不存在时返回StatusNotFound且不修改存储
	UpdateBook(ctx context.Context, id int, fields Fields) Result[*Book]

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id int) Result[Empty]

	// GetBooksByTitleOrAuthor 按书名/作者精确匹配查询
	// 条件之间是AND关系,空条件匹配全部图书
	GetBooksByTitleOrAuthor(ctx context.Context, criteria SearchCriteria) Result[[]*Book]
}

// service 领域服务实现
//
// 并发控制:同一进程内所有操作都在mu保护下执行(写操作独占,读操作共享),
// 消除了 读取-修改-整体写回 之间的竞争。
//
// ID分配:nextID在构造时由 max(已有ID)+1 初始化,之后在内存中递增;
// 每次新增时再与存储中当前的 max(ID)+1 取较大值,保证ID不会与存储中的记录冲突。
type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger

	mu     sync.RWMutex
	nextID int
}

// NewService 创建图书领域服务
// 构造时读取一次全部图书以初始化ID计数器,读取失败则返回错误
func NewService(repo Repository, publisher EventPublisher, logger *zap.Logger) (Service, error) {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	books, err := repo.ReadAll(context.Background())
	if err != nil {
		return nil, fmt.Errorf("初始化图书ID计数器失败: %w", err)
	}

	metrics.SetBooksStored(len(books))
	logger.Info("图书服务已初始化",
		zap.Int("books", len(books)),
		zap.Int("next_id", maxID(books)+1),
	)

	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		nextID:    maxID(books) + 1,
	}, nil
}

// GetBooks 查询全部图书
func (s *service) GetBooks(ctx context.Context) Result[[]*Book] {
	ctx, done := s.begin(ctx, "GetBooks")

	s.mu.RLock()
	defer s.mu.RUnlock()

	books, err := s.repo.ReadAll(ctx)
	if err != nil {
		return finish(done, Fail[[]*Book](err))
	}
	return finish(done, OK(cloneAll(books)))
}

// GetBook 根据ID查询图书
func (s *service) GetBook(ctx context.Context, id int) Result[*Book] {
	ctx, done := s.begin(ctx, "GetBook")

	s.mu.RLock()
	defer s.mu.RUnlock()

	books, err := s.repo.ReadAll(ctx)
	if err != nil {
		return finish(done, Fail[*Book](err))
	}

	i := indexOf(books, id)
	if i < 0 {
		return finish(done, Fail[*Book](ErrBookNotFound))
	}
	return finish(done, OK(books[i].Clone()))
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, fields Fields) Result[*Book] {
	ctx, done := s.begin(ctx, "AddBook")

	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.repo.ReadAll(ctx)
	if err != nil {
		return finish(done, Fail[*Book](err))
	}

	b := NewBook(s.allocateID(books), fields.Title, fields.Author, fields.Year)
	books = append(books, b)

	if err := s.repo.WriteAll(ctx, books); err != nil {
		return finish(done, Fail[*Book](err))
	}

	metrics.SetBooksStored(len(books))
	s.publish(ctx, EventCreated, b)

	return finish(done, OK(b.Clone()))
}

// UpdateBook 更新图书信息
func (s *service) UpdateBook(ctx context.Context, id int, fields Fields) Result[*Book] {
	ctx, done := s.begin(ctx, "UpdateBook")

	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.repo.ReadAll(ctx)
	if err != nil {
		return finish(done, Fail[*Book](err))
	}

	i := indexOf(books, id)
	if i < 0 {
		return finish(done, Fail[*Book](ErrBookNotFound))
	}

	books[i].UpdateInfo(fields.Title, fields.Author, fields.Year)

	if err := s.repo.WriteAll(ctx, books); err != nil {
		return finish(done, Fail[*Book](err))
	}

	s.publish(ctx, EventUpdated, books[i])

	return finish(done, OK(books[i].Clone()))
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id int) Result[Empty] {
	ctx, done := s.begin(ctx, "DeleteBook")

	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.repo.ReadAll(ctx)
	if err != nil {
		return finish(done, Fail[Empty](err))
	}

	i := indexOf(books, id)
	if i < 0 {
		return finish(done, Fail[Empty](ErrBookNotFound))
	}

	removed := books[i]
	books = slices.Delete(books, i, i+1)

	if err := s.repo.WriteAll(ctx, books); err != nil {
		return finish(done, Fail[Empty](err))
	}

	metrics.SetBooksStored(len(books))
	s.publish(ctx, EventDeleted, removed)

	return finish(done, OK(Empty{}))
}

// GetBooksByTitleOrAuthor 按书名/作者查询
func (s *service) GetBooksByTitleOrAuthor(ctx context.Context, criteria SearchCriteria) Result[[]*Book] {
	ctx, done := s.begin(ctx, "GetBooksByTitleOrAuthor")

	s.mu.RLock()
	defer s.mu.RUnlock()

	books, err := s.repo.ReadAll(ctx)
	if err != nil {
		return finish(done, Fail[[]*Book](err))
	}

	blank := criteria.IsBlank()
	matched := make([]*Book, 0, len(books))
	for _, b := range books {
		if blank || b.Matches(criteria) {
			matched = append(matched, b.Clone())
		}
	}
	return finish(done, OK(matched))
}

// =========================================
// 辅助函数
// =========================================

// allocateID 分配新图书ID,调用方必须持有写锁
func (s *service) allocateID(books []*Book) int {
	id := max(s.nextID, maxID(books)+1)
	s.nextID = id + 1
	return id
}

// begin 开启追踪Span并返回结束回调
// 回调负责:记录Span状态、内部错误写日志、上报操作指标
func (s *service) begin(ctx context.Context, op string) (context.Context, func(Status, string, error)) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book."+op)
	start := time.Now()

	return ctx, func(status Status, message string, err error) {
		span.SetAttributes(attribute.String("book.status", status.String()))
		if status == StatusInternalError {
			span.SetStatus(codes.Error, message)
			s.logger.Error("图书操作失败",
				zap.String("operation", op),
				zap.String("message", message),
				zap.Error(err),
				zap.String("trace_id", tracing.ExtractTraceID(ctx)),
				zap.String("span_id", tracing.ExtractSpanID(ctx)),
			)
		}
		span.End()
		metrics.ObserveBookOperation(op, status.String(), time.Since(start))
	}
}

func finish[T any](done func(Status, string, error), r Result[T]) Result[T] {
	done(r.Status, r.Message, r.Err)
	return r
}

// publish 发布变更事件,失败只记录日志
func (s *service) publish(ctx context.Context, typ EventType, b *Book) {
	if _, nop := s.publisher.(NopPublisher); nop {
		return
	}

	event := Event{
		ID:         ulid.Make().String(),
		Type:       typ,
		BookID:     b.ID,
		OccurredAt: time.Now().UTC(),
	}
	if typ != EventDeleted {
		event.Title = b.Title
		event.Author = b.Author
		event.Year = b.Year
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		metrics.IncBookEvent(string(typ), "failure")
		s.logger.Warn("图书事件发布失败",
			zap.String("type", string(typ)),
			zap.Int("book_id", b.ID),
			zap.Error(err),
		)
		return
	}
	metrics.IncBookEvent(string(typ), "success")
}

func indexOf(books []*Book, id int) int {
	return slices.IndexFunc(books, func(b *Book) bool {
		return b.ID == id
	})
}

func maxID(books []*Book) int {
	m := 0
	for _, b := range books {
		if b.ID > m {
			m = b.ID
		}
	}
	return m
}

func cloneAll(books []*Book) []*Book {
	out := make([]*Book, len(books))
	for i, b := range books {
		out[i] = b.Clone()
	}
	return out
}
