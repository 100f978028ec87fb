package checker

import (
	"biolink/app/server/models"
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Checker 周期性探测所有链接的目标地址，记录可达状态的变化
type Checker struct {
	l       *zap.Logger
	db      *gorm.DB
	client  *http.Client
	timeout time.Duration

	interval time.Duration
	ticker   *time.Ticker
	stopChan chan struct{}
	lock     sync.Mutex

	knownStates map[uint]bool // 链接 ID -> 上一轮的可达状态
}

func NewChecker(l *zap.Logger, db *gorm.DB, interval time.Duration, timeout time.Duration) *Checker {
	return &Checker{
		l:           l,
		db:          db,
		client:      &http.Client{Timeout: timeout},
		timeout:     timeout,
		interval:    interval,
		knownStates: make(map[uint]bool),
	}
}

func (ch *Checker) Start() {
	ch.ticker = time.NewTicker(ch.interval)
	ch.stopChan = make(chan struct{})
	go ch.loop()
}

func (ch *Checker) loop() {
	// 启动后先跑一轮，不用干等第一个周期
	ch.Round()

	for {
		select {
		case <-ch.ticker.C:
			ch.l.Debug("check loop")
			ch.Round()
		case <-ch.stopChan:
			ch.l.Debug("stop check loop")
			return
		}
	}
}

func (ch *Checker) Stop() {
	ch.ticker.Stop()
	close(ch.stopChan)
}

// Round 对所有链接做一次状态检查
func (ch *Checker) Round() {
	// 设置并发锁，上一轮还没跑完就跳过这一轮
	if !ch.lock.TryLock() {
		return
	}
	defer ch.lock.Unlock()

	var links []models.Link
	if err := ch.db.Find(&links).Error; err != nil {
		ch.l.Error("failed to get links for check", zap.Error(err))
		return
	}

	for i := range links {
		link := &links[i]
		currentState := ch.Accessible(link.URL)

		previousState, seen := ch.knownStates[link.ID]
		ch.knownStates[link.ID] = currentState

		if !seen {
			// 第一次见到这条链接，记下初始状态就好
			ch.l.Info("initial link state",
				zap.Uint("id", link.ID),
				zap.String("url", link.URL),
				zap.Bool("accessible", currentState),
			)
			continue
		}

		if currentState != previousState {
			ch.l.Warn("link state changed",
				zap.Uint("id", link.ID),
				zap.String("url", link.URL),
				zap.Bool("was", previousState),
				zap.Bool("now", currentState),
			)
		}
	}
}

// Accessible 用 HEAD 请求探测目标地址， 2xx 与 3xx 算可达
func (ch *Checker) Accessible(url string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), ch.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		ch.l.Error("failed to prepare check request", zap.String("url", url), zap.Error(err))
		return false
	}

	res, err := ch.client.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()

	return res.StatusCode >= 200 && res.StatusCode < 400
}
