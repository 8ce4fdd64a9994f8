package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("consultsite", func() {
	Title("Consulting Site API")
	Description("Backend API for the consulting marketing site: static content and inquiry submissions")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Site content and liveness
var _ = Service("site", func() {
	Description("Static marketing content, liveness and diagnostics")

	Method("index", func() {
		Result(MessageResult)
		HTTP(func() {
			GET("/")
			Response(StatusOK)
		})
	})

	Method("hello", func() {
		Result(MessageResult)
		HTTP(func() {
			GET("/api/hello")
			Response(StatusOK)
		})
	})

	Method("list_services", func() {
		Description("List the consulting service offerings")
		Result(ArrayOf(ServiceOffering))
		HTTP(func() {
			GET("/api/services")
			Response(StatusOK)
		})
	})

	Method("list_highlights", func() {
		Description("List headline metrics")
		Result(ArrayOf(Highlight))
		HTTP(func() {
			GET("/api/highlights")
			Response(StatusOK)
		})
	})

	Method("diagnose", func() {
		Description("Informational snapshot of document store connectivity")
		Result(Diagnostics)
		HTTP(func() {
			GET("/test")
			Response(StatusOK)
		})
	})
})

// Inquiry write path
var _ = Service("inquiry", func() {
	Description("Inquiry submissions from the public site")
	Error("invalid", func() {
		Description("One or more inquiry fields failed validation")
	})
	Error("submission_failed", func() {
		Description("The inquiry could not be stored")
	})

	Method("submit", func() {
		Payload(InquiryPayload)
		Result(SubmitResult)
		Error("invalid")
		Error("submission_failed")
		HTTP(func() {
			POST("/api/inquiries")
			Response(StatusOK)
			Response("invalid", StatusUnprocessableEntity)
			Response("submission_failed", StatusInternalServerError)
		})
	})
})

var MessageResult = Type("MessageResult", func() {
	Attribute("message", String, "Liveness message", func() {
		Example("Consulting website backend is running")
	})
	Required("message")
})

var ServiceOffering = Type("ServiceOffering", func() {
	Attribute("id", String, "Service identifier", func() {
		Example("architecture")
	})
	Attribute("title", String, "Display title")
	Attribute("audience", ArrayOf(String), "Who the service is for")
	Attribute("description", String, "Short description")
	Attribute("highlights", ArrayOf(String), "Selling points")
	Required("id", "title", "audience", "description", "highlights")
})

var Highlight = Type("Highlight", func() {
	Attribute("label", String, "Metric label", func() {
		Example("Average ROI")
	})
	Attribute("value", String, "Metric value", func() {
		Example("3-10x")
	})
	Required("label", "value")
})

var Diagnostics = Type("Diagnostics", func() {
	Attribute("backend", String)
	Attribute("database", String)
	Attribute("database_url", String)
	Attribute("database_name", String)
	Attribute("connection_status", String)
	Attribute("collections", ArrayOf(String))
})

var InquiryPayload = Type("InquiryPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(1)
		MaxLength(200)
		Example("Jane Doe")
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		MaxLength(254)
		Example("jane@example.com")
	})
	Attribute("company", String, "Company name", func() {
		MaxLength(200)
	})
	Attribute("phone", String, "Phone number", func() {
		MaxLength(32)
	})
	Attribute("message", String, "Inquiry message", func() {
		MinLength(1)
		MaxLength(5000)
		Example("Need architecture help")
	})
	Attribute("service", String, "Service interest id", func() {
		MaxLength(64)
		Example("architecture")
	})
	Required("name", "email", "message")
})

var SubmitResult = Type("SubmitResult", func() {
	Attribute("status", String, "Always ok", func() {
		Example("ok")
	})
	Attribute("id", String, "Identifier assigned by the document store")
	Required("status", "id")
})
