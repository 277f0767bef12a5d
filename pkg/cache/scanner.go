package cache

import (
	"github.com/luscis/smartwifi/pkg/libol"
	"github.com/luscis/smartwifi/pkg/scanner"
)

type scanners struct {
	Scanners *libol.SafeMap[*scanner.Scanner]
}

func (p *scanners) Init(size int) {
	p.Scanners = libol.NewSafeMap[*scanner.Scanner](size)
}

func (p *scanners) Add(s *scanner.Scanner) {
	if err := p.Scanners.Put(s.Host(), s); err != nil {
		libol.Warn("Scanner.Add: %s", err)
	}
}

func (p *scanners) Get(host string) *scanner.Scanner {
	if s, ok := p.Scanners.Get(host); ok {
		return s
	}
	return nil
}

func (p *scanners) Del(host string) {
	p.Scanners.Del(host)
}

func (p *scanners) Len() int {
	return p.Scanners.Len()
}

func (p *scanners) List() <-chan *scanner.Scanner {
	c := make(chan *scanner.Scanner, 128)

	go func() {
		p.Scanners.Iter(func(k string, s *scanner.Scanner) {
			c <- s
		})
		c <- nil //Finish channel by nil.
	}()

	return c
}

var Scanner = scanners{
	Scanners: libol.NewSafeMap[*scanner.Scanner](0),
}
