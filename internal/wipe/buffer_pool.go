package wipe

import (
	"sync"
)

// BufferPool управляет пулом буферов перезаписи для оптимизации памяти.
// Размеры буферов ограничены снизу MinBufferSize и сверху DefaultBufferSize,
// поэтому классов размеров немного.
type BufferPool struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex
}

var globalBufferPool = NewBufferPool()

// NewBufferPool создаёт новый пул буферов
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pools: make(map[int]*sync.Pool),
	}
}

// GetBuffer возвращает буфер запрошенного размера из глобального пула
func GetBuffer(size int) []byte {
	return globalBufferPool.Get(size)
}

// PutBuffer возвращает буфер в глобальный пул
func PutBuffer(buf []byte) {
	globalBufferPool.Put(buf)
}

// Get возвращает буфер длиной ровно size
func (bp *BufferPool) Get(size int) []byte {
	if size <= 0 {
		return nil
	}

	poolSize := bp.classFor(size)

	bp.mu.RLock()
	pool, exists := bp.pools[poolSize]
	bp.mu.RUnlock()

	if !exists {
		bp.mu.Lock()
		pool, exists = bp.pools[poolSize]
		if !exists {
			pool = &sync.Pool{
				New: func() interface{} {
					return make([]byte, poolSize)
				},
			}
			bp.pools[poolSize] = pool
		}
		bp.mu.Unlock()
	}

	buf := pool.Get().([]byte)
	return buf[:size]
}

// Put возвращает буфер в пул, предварительно затерев его содержимое.
// Буфер мог держать случайные данные, которые ещё не записаны на диск.
func (bp *BufferPool) Put(buf []byte) {
	capacity := cap(buf)
	if capacity == 0 {
		return
	}

	full := buf[:capacity]
	for i := range full {
		full[i] = 0
	}

	bp.mu.RLock()
	pool, exists := bp.pools[capacity]
	bp.mu.RUnlock()

	if exists {
		pool.Put(full)
	}
}

// classFor определяет класс размера для буфера (степени двойки)
func (bp *BufferPool) classFor(size int) int {
	sizes := []int{4096, 16384, 65536}

	for _, poolSize := range sizes {
		if size <= poolSize {
			return poolSize
		}
	}

	// Округляем до 4KB, если запрошен нестандартный размер
	return ((size + 4095) / 4096) * 4096
}
