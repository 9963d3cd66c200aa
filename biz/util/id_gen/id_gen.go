package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pokedex/server/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

var idgen *IDGenerator

// NewID returns a process-unique id for request tracing.
func NewID() string {
	return idgen.NewID()
}

// IDGenerator pre-produces ids on a buffered channel so request paths
// never wait on entropy.
type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

func NewIDGenerator(poolSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: newPool(poolSize, stop),
		stop: stop,
	}
}

func (g *IDGenerator) NewID() string {
	return <-g.pool
}

func (g *IDGenerator) Stop() {
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func newPool(size int, stop chan struct{}) <-chan string {
	pool := make(chan string, size)

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				sb := strings.Builder{}
				sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
				sb.WriteString(ip.IPv4Hex())
				sb.WriteString(strconv.FormatUint(uint64(os.Getpid()), 10))
				sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

				pool <- sb.String()
			}
		}
	}()

	return pool
}
