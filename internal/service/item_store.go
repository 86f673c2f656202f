package service

import (
	"strings"
	"sync"
	"time"
)

// Item 非持久化演示实体，只活在进程内。
type Item struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type ItemInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

type ItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
}

// ItemStore 有锁的插入序列表。显式注入，不做包级全局。
type ItemStore struct {
	mu     sync.Mutex
	nextID int64
	items  []Item
}

func NewItemStore() *ItemStore { return &ItemStore{nextID: 1} }

func (s *ItemStore) Create(in ItemInput) Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := Item{
		ID:          s.nextID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.items = append(s.items, it)
	return it
}

// List 返回插入顺序的拷贝。
func (s *ItemStore) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ItemStore) GetByID(id int64) *Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		it := s.items[i]
		return &it
	}
	return nil
}

func (s *ItemStore) GetByName(name string) *Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if strings.EqualFold(s.items[i].Name, name) {
			it := s.items[i]
			return &it
		}
	}
	return nil
}

func (s *ItemStore) Update(id int64, in ItemPatch) *Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	it := &s.items[i]
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.Price != nil {
		it.Price = *in.Price
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	now := time.Now()
	it.UpdatedAt = &now
	out := *it
	return &out
}

func (s *ItemStore) Delete(id int64) *Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	it := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return &it
}

func (s *ItemStore) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
