// Package notification defines the shared vocabulary of the dispatcher:
// the Notification model, the closed set of channel tags, the Sender
// contract implemented by every channel adapter, and the Router that maps
// an inbound channel tag to its adapter.
//
// Channel adapters live in their own packages (email, sms, dingtalk,
// feishu) and are registered on a Router during process startup:
//
//	router := notification.NewRouter()
//	router.Register(notification.ChannelEmail, emailSender)
//	router.Register(notification.ChannelSMS, smsSender)
//
//	err := router.Route(ctx, notification.Notification{
//	    To:      "user@example.com",
//	    Subject: "Welcome",
//	    Body:    "Hello!",
//	    Channel: notification.ChannelEmail,
//	})
//
// Routing a channel with no registered sender returns
// ErrUnsupportedChannel without touching the network. All failures are
// classified by the sentinel errors in this package and remain
// errors.Is-checkable through wrapping.
package notification
