package cache

import (
	"slices"
	"sync"
)

// Cache — неограниченная конкурентная карта ключ -> значение.
// Записи живут до явного Remove: ни TTL, ни вытеснения нет, рост не ограничен.
// Одна RWMutex на все ключи: чтения параллельны, запись блокирует всё.
// При росте нагрузки это место для шардирования по хешу ключа.
type Cache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func New() *Cache {
	return &Cache{
		items: make(map[string][]byte),
	}
}

// Get возвращает копию сохранённого значения, чтобы вызывающий
// не мог изменить содержимое кеша через общий слайс.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(value), true
}

func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = slices.Clone(value)
}

// Remove удаляет запись и возвращает её значение.
// Отсутствие ключа не является ошибкой.
func (c *Cache) Remove(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.items[key]
	if !ok {
		return nil, false
	}
	delete(c.items, key)
	return value, true
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
