package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/careerbridge/backend/configs"
	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// RenderEnrollmentCertificate produces the completion certificate PDF for a
// finished course enrollment and uploads it to the path the enrollment's
// certificate reference points at. Best effort: the deterministic reference
// was already persisted by the progress update, so any failure here is
// logged and the enrollment is left untouched.
func RenderEnrollmentCertificate(enrollment models.CourseEnrollment) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", enrollment.UserID).Error; err != nil {
		log.Printf("🔥 Certificate render: user %s not found: %v", enrollment.UserID, err)
		return
	}
	var course models.Course
	if err := database.DB.First(&course, "id = ?", enrollment.CourseID).Error; err != nil {
		log.Printf("🔥 Certificate render: course %s not found: %v", enrollment.CourseID, err)
		return
	}

	htmlData, err := generateCertificateHTML(user.FullName, course.Title)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	if err := uploadCertificatePDF(pdfBytes, enrollment.ID.String()); err != nil {
		log.Printf("🔥 Failed to upload certificate for enrollment %s: %v", enrollment.ID, err)
		return
	}

	log.Printf("✅ Generated certificate for enrollment %s (%s).", enrollment.ID, course.Title)
}

func generateCertificateHTML(studentName, courseTitle string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName    string
		CourseTitle    string
		CompletionDate string
	}{
		StudentName:    studentName,
		CourseTitle:    courseTitle,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificatePDF(fileBytes []byte, enrollmentID string) error {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/enrollments/%s", enrollmentID),
		Folder:       "careerbridge_certificates",
		ResourceType: "raw",
	}

	_, err = cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	return err
}
