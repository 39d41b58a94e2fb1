package record

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const localIDPrefix = "local-"

// Clock абстрагирует получение времени, чтобы тесты были детерминированными
type Clock interface {
	Now() time.Time
}

// RealClock возвращает текущее время
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator выдает уникальные идентификаторы записей
type IDGenerator interface {
	New() string
}

// UUIDGenerator - идентификаторы, которые назначает сервер
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// LocalIDGenerator выдает клиентские идентификаторы на основе времени.
// Значения строго возрастают, поэтому в пределах сессии не повторяются,
// даже если две записи созданы в одну миллисекунду.
type LocalIDGenerator struct {
	clock Clock
	mu    sync.Mutex
	last  int64
}

func NewLocalIDGenerator(clock Clock) *LocalIDGenerator {
	if clock == nil {
		clock = RealClock{}
	}
	return &LocalIDGenerator{clock: clock}
}

func (g *LocalIDGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.clock.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return localIDPrefix + strconv.FormatInt(ms, 10)
}

// IsLocalID сообщает, создан ли идентификатор на клиенте (запись еще не видел сервер)
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}

// Identified - любая запись с идентификатором; этого достаточно хранилищам сервера
type Identified interface {
	RecordID() string
}
