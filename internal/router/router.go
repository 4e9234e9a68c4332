package routes

import (
	"net/http"

	_ "github.com/kitabist/semaphore-go/internal/docs" // swagger docs
	"github.com/kitabist/semaphore-go/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home    HomeHandler
	Message MessageHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
	SendPriority(w http.ResponseWriter, r *http.Request)
	SendOTP(w http.ResponseWriter, r *http.Request)
	Outbox(w http.ResponseWriter, r *http.Request)

	GetMessages(w http.ResponseWriter, r *http.Request)
	GetMessage(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetSenderNames(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	// Relayed sends
	mux.HandleFunc("POST /messages", d.Message.SendMessage)
	mux.HandleFunc("POST /messages/priority", d.Message.SendPriority)
	mux.HandleFunc("POST /otp", d.Message.SendOTP)
	mux.HandleFunc("GET /outbox", d.Message.Outbox)

	// Proxied provider reads
	mux.HandleFunc("GET /messages", d.Message.GetMessages)
	mux.HandleFunc("GET /messages/{id}", d.Message.GetMessage)
	mux.HandleFunc("GET /account", d.Message.GetAccount)
	mux.HandleFunc("GET /account/transactions", d.Message.GetTransactions)
	mux.HandleFunc("GET /account/sendernames", d.Message.GetSenderNames)
	mux.HandleFunc("GET /account/users", d.Message.GetUsers)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
