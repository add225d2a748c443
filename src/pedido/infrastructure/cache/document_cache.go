package cache

import (
	"sync"
)

// DocumentCache cache en memoria de documentos ya renderizados, por ID de
// pedido. Un pedido canónico es inmutable, así que sus bytes renderizados no
// caducan: regenerar el mismo PDF en cada descarga sería trabajo repetido.
type DocumentCache struct {
	docs map[string][]byte
	mu   sync.RWMutex
}

// NewDocumentCache crea un cache de documentos vacío
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		docs: make(map[string][]byte),
	}
}

// Get obtiene los bytes renderizados de un pedido, si existen
func (c *DocumentCache) Get(orderID string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[orderID]
	return doc, ok
}

// Put guarda los bytes renderizados de un pedido
func (c *DocumentCache) Put(orderID string, doc []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.docs[orderID] = doc
}

// Len retorna la cantidad de documentos cacheados
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.docs)
}
