package delivery

import (
	"fmt"
	"path"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"
)

// attachmentRoot is the fixed root folder for delivery attachments.
// Existing stored files depend on this exact layout.
const attachmentRoot = "good_deliveries"

// AttachmentFolder returns the storage folder for the delivery's attachments:
// <root>/<creation-year>/<delivery-id>.
func (d *Delivery) AttachmentFolder() string {
	return fmt.Sprintf("%s/%d/%s", attachmentRoot, d.createdAt.Year(), d.id)
}

// Attachment is a file attached to a delivery. Storage mechanics are
// external; the domain only defines the deterministic path shape.
type Attachment struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	fileName   string
}

// NewAttachment creates an attachment record for a delivery.
func NewAttachment(id, deliveryID kernel.UUID, fileName string) (*Attachment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}
	if fileName == "" {
		return nil, errs.NewValueIsRequiredError("fileName")
	}

	return &Attachment{
		id:         id,
		deliveryID: deliveryID,
		fileName:   fileName,
	}, nil
}

// ID returns the attachment's unique identifier.
func (a *Attachment) ID() kernel.UUID {
	return a.id
}

// DeliveryID returns the owning delivery's identifier.
func (a *Attachment) DeliveryID() kernel.UUID {
	return a.deliveryID
}

// FileName returns the stored file name.
func (a *Attachment) FileName() string {
	return a.fileName
}

// Path returns the full storage path of the file under the delivery's
// attachment folder.
func (a *Attachment) Path(d *Delivery) string {
	return path.Join(d.AttachmentFolder(), a.fileName)
}
