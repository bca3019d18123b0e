// Package txmanager сериализует доступ к файловому хранилищу.
//
// Внутри процесса используется sync.RWMutex, между процессами - advisory lock
// на файле рядом с журналом (flock). Запись получает эксклюзивную блокировку,
// чтение - разделяемую.
package txmanager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultRetryDelay = 20 * time.Millisecond
)

var (
	// ErrLockTimeout возвращается, если блокировку не удалось получить за отведенное время
	ErrLockTimeout = errors.New("txmanager: lock timeout")

	// ErrLock возвращается при ошибке работы с файлом блокировки
	ErrLock = errors.New("txmanager: lock error")
)

// TransactionManager управляет блокировками файла журнала
type TransactionManager struct {
	mu      sync.RWMutex
	file    *flock.Flock
	timeout time.Duration

	readersMu sync.Mutex
	readers   int
}

// NewTransactionManager создает менеджер с файлом блокировки lockPath.
// timeout <= 0 означает значение по умолчанию.
func NewTransactionManager(lockPath string, timeout time.Duration) *TransactionManager {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &TransactionManager{
		file:    flock.New(lockPath),
		timeout: timeout,
	}
}

// Do выполняет fn с эксклюзивной блокировкой
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn с эксклюзивной блокировкой: ни одна другая
// операция (в этом или другом процессе) не видит промежуточного состояния
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lockCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	locked, err := m.file.TryLockContext(lockCtx, defaultRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: exclusive lock %s: %v", ErrLockTimeout, m.file.Path(), err)
		}
		return fmt.Errorf("%w: exclusive lock %s: %v", ErrLock, m.file.Path(), err)
	}
	if !locked {
		return fmt.Errorf("%w: exclusive lock %s", ErrLockTimeout, m.file.Path())
	}
	defer func() { _ = m.file.Unlock() }()

	return fn(ctx)
}

// DoReadOnly выполняет fn с разделяемой блокировкой
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.acquireShared(ctx); err != nil {
		return err
	}
	defer m.releaseShared()

	return fn(ctx)
}

// Разделяемый flock берет первый читатель и отпускает последний:
// объект flock один на процесс, а Unlock закрывает дескриптор.
func (m *TransactionManager) acquireShared(ctx context.Context) error {
	m.readersMu.Lock()
	defer m.readersMu.Unlock()

	if m.readers > 0 {
		m.readers++
		return nil
	}

	lockCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	locked, err := m.file.TryRLockContext(lockCtx, defaultRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: shared lock %s: %v", ErrLockTimeout, m.file.Path(), err)
		}
		return fmt.Errorf("%w: shared lock %s: %v", ErrLock, m.file.Path(), err)
	}
	if !locked {
		return fmt.Errorf("%w: shared lock %s", ErrLockTimeout, m.file.Path())
	}

	m.readers = 1
	return nil
}

func (m *TransactionManager) releaseShared() {
	m.readersMu.Lock()
	defer m.readersMu.Unlock()

	m.readers--
	if m.readers == 0 {
		_ = m.file.Unlock()
	}
}
