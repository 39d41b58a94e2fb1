package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"ridejournal/internal/app/client/remote"
	"ridejournal/internal/domain/record"
)

// Mode - откуда репозиторий сейчас берет и куда пишет данные
type Mode int

const (
	ModeRemote Mode = iota
	ModeLocal
)

func (m Mode) String() string {
	if m == ModeLocal {
		return "local"
	}
	return "remote"
}

const (
	advisoryOffline    = "Сервер недоступен, показаны данные из локального кэша"
	advisoryLoadFailed = "Не удалось загрузить данные: сервер недоступен, локальный кэш не читается"
	advisorySaved      = "Сервер недоступен, изменения сохранены локально"
	advisoryNotSaved   = "Сервер недоступен, сохранить изменения локально не удалось"
)

// Entity - запись, которой управляет Repository
type Entity[T any] interface {
	record.Identified
	Validate() error
	// Revise возвращает новую версию original с полями получателя;
	// id и дата создания берутся из original.
	Revise(original T, now time.Time) T
}

// Draft - данные новой записи до назначения идентификатора
type Draft[T any] interface {
	Validate() error
	Build(id string, now time.Time) T
}

type RemoteStore[T any, D any] interface {
	ListAll(ctx context.Context) remote.Result[[]T]
	Create(ctx context.Context, draft D) remote.Result[T]
	Update(ctx context.Context, id string, rec T) remote.Result[T]
	Delete(ctx context.Context, id string) remote.Result[struct{}]
}

type LocalCache[T any] interface {
	ReadAll(ctx context.Context) ([]T, error)
	WriteAll(ctx context.Context, items []T) error
}

type LoadResult[T any] struct {
	Records  []T
	Mode     Mode
	Advisory string
}

// Degraded сообщает, что данные пришли не с сервера
func (r LoadResult[T]) Degraded() bool {
	return r.Mode == ModeLocal
}

// Repository - доступ к записям одного вида с переходом в офлайн.
//
// Пока сервер отвечает, все операции идут через него, а mirror повторяет
// ответы сервера. При сетевой ошибке, 5xx или битом ответе репозиторий
// переключается в локальный режим и дальше работает только с кэшем; обратно
// на сервер его возвращает только явный Load. Мьютекс защищает mode, mirror и
// lastError и не удерживается во время сетевых запросов; чтение-изменение-запись
// кэша выполняется под ним целиком.
type Repository[T Entity[T], D Draft[T]] struct {
	kind   string
	remote RemoteStore[T, D]
	cache  LocalCache[T]
	ids    record.IDGenerator
	clock  record.Clock
	log    *slog.Logger

	mu        sync.Mutex
	mode      Mode
	mirror    []T
	lastError string
}

func NewRepository[T Entity[T], D Draft[T]](
	kind string,
	remoteStore RemoteStore[T, D],
	cache LocalCache[T],
	ids record.IDGenerator,
	clock record.Clock,
	log *slog.Logger,
) *Repository[T, D] {
	if clock == nil {
		clock = record.RealClock{}
	}
	if ids == nil {
		ids = record.NewLocalIDGenerator(clock)
	}
	return &Repository[T, D]{
		kind:   kind,
		remote: remoteStore,
		cache:  cache,
		ids:    ids,
		clock:  clock,
		log:    log.With("component", "repository", "kind", kind),
		mode:   ModeRemote,
		mirror: []T{},
	}
}

// Load перечитывает данные с сервера, а при неудаче - из кэша. Ошибок не
// возвращает: о деградации сообщают Mode и Advisory.
func (r *Repository[T, D]) Load(ctx context.Context) LoadResult[T] {
	res := r.remote.ListAll(ctx)
	if res.Status == remote.StatusOK {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.mode = ModeRemote
		r.mirror = res.Value
		r.lastError = ""
		r.log.Debug("loaded from server", "count", len(res.Value))
		return r.snapshotLocked()
	}

	r.log.Warn("remote store unavailable, reading local cache", "status", res.Status.String(), "error", res.Err)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.mode = ModeLocal
	items, err := r.cache.ReadAll(ctx)
	if err != nil {
		r.log.Error("failed to read local cache", "error", err)
		r.mirror = []T{}
		r.lastError = advisoryLoadFailed
		return r.snapshotLocked()
	}

	r.mirror = items
	r.lastError = advisoryOffline
	return r.snapshotLocked()
}

// Create проверяет черновик и сохраняет запись. Возвращает запись в том виде,
// в котором она сохранена: с идентификатором сервера или локальным.
func (r *Repository[T, D]) Create(ctx context.Context, draft D) (T, error) {
	var zero T
	if err := draft.Validate(); err != nil {
		return zero, err
	}

	if r.Mode() == ModeRemote {
		res := r.remote.Create(ctx, draft)
		switch res.Status {
		case remote.StatusOK:
			r.mu.Lock()
			r.mirror = append(r.mirror, res.Value)
			r.mu.Unlock()
			return res.Value, nil
		case remote.StatusUnavailable:
			r.goOffline("create", res.Err)
		default:
			return zero, res.Err
		}
	}

	rec := draft.Build(r.ids.New(), r.clock.Now().UTC())

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]T, 0, len(r.mirror)+1)
	next = append(next, r.mirror...)
	next = append(next, rec)
	if err := r.persistLocked(ctx, next); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update заменяет поля записи id. Идентификатор и дата создания сохраняются.
func (r *Repository[T, D]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T

	r.mu.Lock()
	i := r.indexLocked(id)
	if i < 0 {
		r.mu.Unlock()
		return zero, r.notFound(id)
	}
	original := r.mirror[i]
	mode := r.mode
	r.mu.Unlock()

	next := rec.Revise(original, r.clock.Now().UTC())
	if err := next.Validate(); err != nil {
		return zero, err
	}

	if mode == ModeRemote {
		res := r.remote.Update(ctx, id, next)
		switch res.Status {
		case remote.StatusOK:
			r.mu.Lock()
			if j := r.indexLocked(id); j >= 0 {
				r.mirror[j] = res.Value
			}
			r.mu.Unlock()
			return res.Value, nil
		case remote.StatusUnavailable:
			r.goOffline("update", res.Err)
		default:
			return zero, res.Err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	j := r.indexLocked(id)
	if j < 0 {
		return zero, r.notFound(id)
	}
	updated := make([]T, len(r.mirror))
	copy(updated, r.mirror)
	updated[j] = next
	if err := r.persistLocked(ctx, updated); err != nil {
		return zero, err
	}
	return next, nil
}

// Delete удаляет запись. Повторное удаление того же id - ErrNotFound.
func (r *Repository[T, D]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	i := r.indexLocked(id)
	mode := r.mode
	r.mu.Unlock()
	if i < 0 {
		return r.notFound(id)
	}

	if mode == ModeRemote {
		res := r.remote.Delete(ctx, id)
		switch res.Status {
		case remote.StatusOK:
			r.mu.Lock()
			r.removeLocked(id)
			r.mu.Unlock()
			return nil
		case remote.StatusNotFound:
			// на сервере записи уже нет: убираем устаревшую копию
			r.mu.Lock()
			r.removeLocked(id)
			r.mu.Unlock()
			return r.notFound(id)
		case remote.StatusUnavailable:
			r.goOffline("delete", res.Err)
		default:
			return res.Err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	j := r.indexLocked(id)
	if j < 0 {
		return r.notFound(id)
	}
	rest := make([]T, 0, len(r.mirror)-1)
	rest = append(rest, r.mirror[:j]...)
	rest = append(rest, r.mirror[j+1:]...)
	return r.persistLocked(ctx, rest)
}

// GetByID читает только mirror, без обращения к серверу и кэшу
func (r *Repository[T, D]) GetByID(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexLocked(id); i >= 0 {
		return r.mirror[i], true
	}
	var zero T
	return zero, false
}

// Records возвращает копию mirror в порядке добавления
func (r *Repository[T, D]) Records() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, len(r.mirror))
	copy(out, r.mirror)
	return out
}

func (r *Repository[T, D]) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Advisory - сообщение для пользователя о последней деградации, пусто если ее нет
func (r *Repository[T, D]) Advisory() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastError
}

func (r *Repository[T, D]) goOffline(op string, cause error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != ModeLocal {
		r.log.Warn("remote store unavailable, switching to local cache", "op", op, "error", cause)
	}
	r.mode = ModeLocal
}

// persistLocked пишет items в кэш и только после успешной записи делает их mirror
func (r *Repository[T, D]) persistLocked(ctx context.Context, items []T) error {
	if err := r.cache.WriteAll(ctx, items); err != nil {
		r.log.Error("failed to write local cache", "error", err)
		r.lastError = advisoryNotSaved
		return &record.PersistenceError{Namespace: r.kind, Err: err}
	}
	r.mirror = items
	r.lastError = advisorySaved
	return nil
}

func (r *Repository[T, D]) snapshotLocked() LoadResult[T] {
	records := make([]T, len(r.mirror))
	copy(records, r.mirror)
	return LoadResult[T]{
		Records:  records,
		Mode:     r.mode,
		Advisory: r.lastError,
	}
}

func (r *Repository[T, D]) indexLocked(id string) int {
	for i := range r.mirror {
		if r.mirror[i].RecordID() == id {
			return i
		}
	}
	return -1
}

func (r *Repository[T, D]) removeLocked(id string) {
	if i := r.indexLocked(id); i >= 0 {
		r.mirror = append(r.mirror[:i:i], r.mirror[i+1:]...)
	}
}

func (r *Repository[T, D]) notFound(id string) error {
	return fmt.Errorf("%s %s: %w", r.kind, id, record.ErrNotFound)
}
