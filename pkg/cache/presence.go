package cache

import (
	"sync"
	"time"

	"github.com/luscis/smartwifi/pkg/models"
)

type presence struct {
	lock  sync.RWMutex
	items map[string]*models.Presence
}

func (p *presence) Init() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.items = make(map[string]*models.Presence, 128)
}

// See records d as present on host. It returns a copy of the entry and
// whether the device just arrived.
func (p *presence) See(d models.Device, host string, now time.Time) (models.Presence, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if l, ok := p.items[d.Mac]; ok {
		back := l.See(d, host, now)
		return *l, back
	}
	l := models.NewPresence(d, host, now)
	p.items[d.Mac] = l
	return *l, true
}

func (p *presence) SetHostname(mac, name string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if l, ok := p.items[mac]; ok {
		l.Hostname = name
	}
}

// Expire marks the devices not seen for timeout as away and returns them.
func (p *presence) Expire(now time.Time, timeout time.Duration) []models.Presence {
	p.lock.Lock()
	defer p.lock.Unlock()
	left := make([]models.Presence, 0, 4)
	for _, l := range p.items {
		if l.Expire(now, timeout) {
			left = append(left, *l)
		}
	}
	return left
}

func (p *presence) Get(mac string) (models.Presence, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	if l, ok := p.items[models.NormalizeMac(mac)]; ok {
		return *l, true
	}
	return models.Presence{}, false
}

func (p *presence) Len() int {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return len(p.items)
}

func (p *presence) List() <-chan *models.Presence {
	c := make(chan *models.Presence, 128)

	go func() {
		p.lock.RLock()
		items := make([]models.Presence, 0, len(p.items))
		for _, l := range p.items {
			items = append(items, *l)
		}
		p.lock.RUnlock()
		for i := range items {
			c <- &items[i]
		}
		c <- nil //Finish channel by nil.
	}()

	return c
}

var Presence = presence{
	items: make(map[string]*models.Presence, 128),
}
