package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/logout/:id", authMiddleware.ThenFunc(app.userHandler.LogOut))

	// Invoices
	mux.Post("/dashboard/invoices", authMiddleware.ThenFunc(app.invoiceHandler.CreateInvoice))
	mux.Get("/dashboard/invoices", authMiddleware.ThenFunc(app.invoiceHandler.GetInvoices))
	mux.Get("/dashboard/invoices/:id", authMiddleware.ThenFunc(app.invoiceHandler.GetInvoiceByID))
	mux.Put("/dashboard/invoices/:id", authMiddleware.ThenFunc(app.invoiceHandler.UpdateInvoice))
	mux.Del("/dashboard/invoices/:id", authMiddleware.ThenFunc(app.invoiceHandler.DeleteInvoice))

	// Customers
	mux.Get("/customers", authMiddleware.ThenFunc(app.customerHandler.GetCustomers))

	return mux
}
