// Package metrics uygulama sayaçlarını Prometheus'a kaydeder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nfckart"

var (
	CardsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_created_total",
		Help:      "Sipariş ile birlikte oluşturulan kartvizit sayısı.",
	}, []string{"card_type"})

	SlugCollisions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slug_collisions_total",
		Help:      "Slug ayırma sırasında yaşanan çakışma sayısı.",
	})

	CardViews = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "card_views_total",
		Help:      "Herkese açık kartvizit görüntülenme sayısı.",
	})

	OrderStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Hedef duruma göre sipariş durumu güncellemeleri.",
	}, []string{"status"})

	AdminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Sonuca göre yönetici giriş denemeleri.",
	}, []string{"result"})
)
