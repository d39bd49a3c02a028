package viewcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewCache_RevalidateAndClear(t *testing.T) {
	vc := New()

	assert.False(t, vc.IsStale("/dashboard/invoices"))

	vc.RevalidatePath("/dashboard/invoices")
	assert.True(t, vc.IsStale("/dashboard/invoices"))
	assert.False(t, vc.IsStale("/createuser"))

	vc.Clear("/dashboard/invoices")
	assert.False(t, vc.IsStale("/dashboard/invoices"))
}

func TestViewCache_StalePaths(t *testing.T) {
	vc := New()
	vc.RevalidatePath("/dashboard/invoices")
	vc.RevalidatePath("/createuser")

	assert.ElementsMatch(t, []string{"/dashboard/invoices", "/createuser"}, vc.StalePaths())
}

func TestViewCache_ConcurrentRevalidate(t *testing.T) {
	vc := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vc.RevalidatePath("/dashboard/invoices")
		}()
	}
	wg.Wait()

	assert.True(t, vc.IsStale("/dashboard/invoices"))
}
