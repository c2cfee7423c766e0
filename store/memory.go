package store

import (
	"context"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// idPrefixes keeps mock-mode identifiers recognizable in logs and the
// dashboard while staying collision-free.
var idPrefixes = map[string]string{
	Products: "product",
	Variants: "variant",
	Orders:   "order",
	Settings: "settings",
}

// memoryStore is the mock-mode backing: plain maps guarded by one mutex.
// Everything lives in process memory and is reset on restart.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]Document
}

// NewMemory returns an in-memory store pre-seeded with the settings
// singleton and a demo product with three variants.
func NewMemory() Store {
	ms := &memoryStore{
		data: map[string]map[string]Document{
			Products: {},
			Variants: {},
			Orders:   {},
			Settings: {},
		},
	}
	ms.seed()
	return ms
}

// NewMemoryEmpty returns an in-memory store without seed data, for tests.
func NewMemoryEmpty() Store {
	return &memoryStore{
		data: map[string]map[string]Document{
			Products: {},
			Variants: {},
			Orders:   {},
			Settings: {},
		},
	}
}

func (ms *memoryStore) seed() {
	now := time.Now()

	settings, _ := ToDocument(structs.DefaultSettings())
	ms.data[Settings][SettingsKey] = settings

	product, _ := ToDocument(structs.Product{
		ID:        "product-1",
		Name:      "منتج رائع",
		NameFr:    "Produit Excellent",
		MainImage: "https://via.placeholder.com/400x400/667eea/ffffff?text=Product",
		InStock:   true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	ms.data[Products]["product-1"] = product

	variants := []structs.Variant{
		{ID: "variant-1", ProductID: "product-1", Name: "اللون الأزرق", NameFr: "Couleur Bleue",
			ImageURL: "https://via.placeholder.com/150x150/3b82f6/ffffff?text=Blue", CreatedAt: now},
		{ID: "variant-2", ProductID: "product-1", Name: "اللون الأحمر", NameFr: "Couleur Rouge",
			ImageURL: "https://via.placeholder.com/150x150/ef4444/ffffff?text=Red", CreatedAt: now},
		{ID: "variant-3", ProductID: "product-1", Name: "اللون الأخضر", NameFr: "Couleur Verte",
			ImageURL: "https://via.placeholder.com/150x150/22c55e/ffffff?text=Green", CreatedAt: now},
	}
	for _, v := range variants {
		doc, _ := ToDocument(v)
		ms.data[Variants][v.ID] = doc
	}
}

func (ms *memoryStore) Collection(name string) Collection {
	return &memoryCollection{store: ms, name: name}
}

func (ms *memoryStore) Mode() string { return "memory" }

func (ms *memoryStore) Health(ctx context.Context) error { return nil }

func (ms *memoryStore) Close() error { return nil }

// collection lazily creates the backing map for a name. Callers must hold
// the write lock; read paths look up ms.data directly so they stay safe
// under the read lock (reading a nil map is fine).
func (ms *memoryStore) collection(name string) map[string]Document {
	if c, ok := ms.data[name]; ok {
		return c
	}
	c := map[string]Document{}
	ms.data[name] = c
	return c
}

type memoryCollection struct {
	store *memoryStore
	name  string
}

func (mc *memoryCollection) GetAll(ctx context.Context) ([]Document, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()

	docs := make([]Document, 0, len(mc.store.data[mc.name]))
	for _, doc := range mc.store.data[mc.name] {
		docs = append(docs, copyDocument(doc))
	}
	return docs, nil
}

func (mc *memoryCollection) GetAllOrdered(ctx context.Context, field string, desc bool) ([]Document, error) {
	docs, err := mc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(docs, func(i, j int) bool {
		c := compareValues(docs[i][field], docs[j][field])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return docs, nil
}

func (mc *memoryCollection) GetByID(ctx context.Context, id string) (Document, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()

	doc, ok := mc.store.data[mc.name][id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return copyDocument(doc), nil
}

func (mc *memoryCollection) Where(ctx context.Context, field string, value any) ([]Document, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()

	var docs []Document
	for _, doc := range mc.store.data[mc.name] {
		if fmt.Sprint(doc[field]) == fmt.Sprint(value) {
			docs = append(docs, copyDocument(doc))
		}
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

func (mc *memoryCollection) Create(ctx context.Context, data Document) (string, error) {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()

	prefix, ok := idPrefixes[mc.name]
	if !ok {
		prefix = mc.name
	}
	id := prefix + "-" + uuid.NewString()

	doc := copyDocument(data)
	doc["id"] = id
	mc.store.collection(mc.name)[id] = doc
	return id, nil
}

func (mc *memoryCollection) UpdateMerge(ctx context.Context, id string, data Document) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()

	doc, ok := mc.store.data[mc.name][id]
	if !ok {
		return lib.ErrNotFound
	}
	for k, v := range data {
		doc[k] = v
	}
	return nil
}

func (mc *memoryCollection) Set(ctx context.Context, id string, data Document, merge bool) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()

	col := mc.store.collection(mc.name)
	existing, ok := col[id]
	if !ok || !merge {
		doc := copyDocument(data)
		doc["id"] = id
		col[id] = doc
		return nil
	}
	for k, v := range data {
		existing[k] = v
	}
	return nil
}

func (mc *memoryCollection) Delete(ctx context.Context, id string) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()

	delete(mc.store.collection(mc.name), id)
	return nil
}

func (mc *memoryCollection) DeleteWhere(ctx context.Context, field string, value any) (int, error) {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()

	col := mc.store.collection(mc.name)
	deleted := 0
	for id, doc := range col {
		if fmt.Sprint(doc[field]) == fmt.Sprint(value) {
			delete(col, id)
			deleted++
		}
	}
	return deleted, nil
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// compareValues orders document field values: timestamps chronologically,
// numbers numerically, everything else as strings.
func compareValues(a, b any) int {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		at, aerr := time.Parse(time.RFC3339Nano, as)
		bt, berr := time.Parse(time.RFC3339Nano, bs)
		if aerr == nil && berr == nil {
			return at.Compare(bt)
		}
	}

	af, aok := a.(float64)
	bf, bok2 := b.(float64)
	if aok && bok2 {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
