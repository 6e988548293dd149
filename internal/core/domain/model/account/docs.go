// Package account provides domain entities and business logic for user account
// management in the parcel carrier system. It implements the Account aggregate
// root covering both administrator and transporter users.
//
// The package includes:
//   - Account: The aggregate root that manages identity, credentials, role,
//     activation state, and transporter availability
//   - Role: An enumeration of account roles (administrator, transporter)
//   - Specialty: An enumeration of transporter cargo categories
//   - Availability: An enumeration of transporter capacity states
//
// Key business rules:
//   - Logins are 3 to 50 characters of letters, digits, and underscores
//   - Accounts always carry a credential digest, never a plaintext password
//   - Each transporter specialty maps to exactly one parcel type it may carry
//   - Only active, available transporters can accept a new parcel
//   - Availability changes are no-ops for administrator accounts
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package account
