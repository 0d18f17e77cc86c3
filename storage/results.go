package storage

// Copyright (c) TFG Co. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"
)

var ErrNotFound = errors.New("result not found")

// Results stores encoded wait results by hand notation.
type Results interface {
	Get(ctx context.Context, hand string) ([]byte, error)
	Put(ctx context.Context, hand string, value []byte) error
}

func getResultKey(hand string) string {
	return fmt.Sprintf("waits/%s", hand)
}

// MemoryResults keeps at most size results in process, evicting the least
// recently used.
type MemoryResults struct {
	cache *lru.Cache[string, []byte]
}

func NewMemoryResults(size int) (*MemoryResults, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("memory results: %w", err)
	}
	return &MemoryResults{cache: cache}, nil
}

func (m *MemoryResults) Get(ctx context.Context, hand string) ([]byte, error) {
	v, ok := m.cache.Get(getResultKey(hand))
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *MemoryResults) Put(ctx context.Context, hand string, value []byte) error {
	m.cache.Add(getResultKey(hand), value)
	return nil
}

func (m *MemoryResults) Len() int {
	return m.cache.Len()
}

// ETCDResults shares results between servers through etcd. Entries are bound
// to this server's lease and disappear when it stops renewing.
type ETCDResults struct {
	modules.Base
	cli             *clientv3.Client
	etcdEndpoints   []string
	etcdPrefix      string
	etcdDialTimeout time.Duration
	leaseTTL        time.Duration
	leaseID         atomic.Int64 // 续约协程会替换
	stopChan        chan struct{}
	stopOnce        sync.Once
}

func NewETCDResults(conf config.ETCDBindingConfig) *ETCDResults {
	return &ETCDResults{
		etcdEndpoints:   conf.Endpoints,
		etcdPrefix:      conf.Prefix,
		etcdDialTimeout: conf.DialTimeout,
		leaseTTL:        conf.LeaseTTL,
		stopChan:        make(chan struct{}),
	}
}

func (r *ETCDResults) Put(ctx context.Context, hand string, value []byte) error {
	_, err := r.cli.Put(ctx, getResultKey(hand), string(value), clientv3.WithLease(r.lease()))
	return err
}

func (r *ETCDResults) Get(ctx context.Context, hand string) ([]byte, error) {
	res, err := r.cli.Get(ctx, getResultKey(hand))
	if err != nil {
		return nil, err
	}
	if len(res.Kvs) == 0 {
		return nil, ErrNotFound
	}
	return res.Kvs[0].Value, nil
}

func (r *ETCDResults) lease() clientv3.LeaseID {
	return clientv3.LeaseID(r.leaseID.Load())
}

func (r *ETCDResults) watchLeaseChan(c <-chan *clientv3.LeaseKeepAliveResponse) {
	for {
		select {
		case <-r.stopChan:
			return
		case kaRes := <-c:
			if kaRes != nil {
				continue
			}
			logger.Log.Warn("[results] error renewing etcd lease, rebootstrapping")
			for {
				if err := r.bootstrapLease(); err != nil {
					logger.Log.Warnf("[results] rebootstrap lease: %v, retry in 5 seconds", err)
					select {
					case <-r.stopChan:
						return
					case <-time.After(5 * time.Second):
					}
					continue
				}
				return
			}
		}
	}
}

func (r *ETCDResults) bootstrapLease() error {
	l, err := r.cli.Grant(context.TODO(), int64(r.leaseTTL.Seconds()))
	if err != nil {
		return err
	}
	r.leaseID.Store(int64(l.ID))
	logger.Log.Debugf("[results] got leaseID: %x", l.ID)
	// c closes when the lease is lost
	c, err := r.cli.KeepAlive(context.TODO(), l.ID)
	if err != nil {
		return err
	}
	<-c
	go r.watchLeaseChan(c)
	return nil
}

// Init connects to etcd and grabs the lease.
func (r *ETCDResults) Init() error {
	if r.cli == nil {
		cli, err := clientv3.New(clientv3.Config{
			Endpoints:   r.etcdEndpoints,
			DialTimeout: r.etcdDialTimeout,
		})
		if err != nil {
			return err
		}
		r.cli = cli
	}
	r.cli.KV = namespace.NewKV(r.cli.KV, r.etcdPrefix)
	return r.bootstrapLease()
}

// Shutdown stops renewing the lease and closes the client. It is safe to call
// when Init never ran or failed.
func (r *ETCDResults) Shutdown() error {
	r.stopOnce.Do(func() { close(r.stopChan) })
	if r.cli == nil {
		return nil
	}
	return r.cli.Close()
}
