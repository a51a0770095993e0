// file: internals/features/media/service/guard.go
//
// Guard melacak pasangan pasang/lepas proteksi per scope penampil. Lepas harus
// idempoten dan dipanggil di setiap jalur keluar; hitungan kembali ke nol
// adalah bukti tidak ada yang bocor.
package service

import "sync"

type Guard struct {
	mu        sync.Mutex
	installed map[string]int
}

func NewGuard() *Guard {
	return &Guard{installed: make(map[string]int)}
}

// Install memasang proteksi untuk satu scope dan mengembalikan fungsi pelepas.
// Memanggil pelepas lebih dari sekali aman (idempoten).
func (g *Guard) Install(scope string) (release func()) {
	g.mu.Lock()
	g.installed[scope]++
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			g.installed[scope]--
			if g.installed[scope] <= 0 {
				delete(g.installed, scope)
			}
		})
	}
}

// InstalledCount: jumlah proteksi yang masih terpasang (semua scope).
func (g *Guard) InstalledCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := 0
	for _, n := range g.installed {
		total += n
	}
	return total
}
