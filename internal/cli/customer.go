package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage the customer directory",
	Long: `Manage the customer directory used to group report entries.

Examples:
  timeaccount customer add "Acme Corp" --email billing@acme.com
  timeaccount customer list
  timeaccount customer edit "Acme Corp" --phone "+1 555 0100"
  timeaccount customer delete "Acme Corp"`,
}

var (
	customerEmail          string
	customerPhone          string
	customerBillingContact string
	customerBillingEmail   string
	customerBillingPhone   string
	customerDeleteForce    bool
)

var customerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a customer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerAdd,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	RunE:  runCustomerList,
}

var customerEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a customer's contact details",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerEdit,
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a customer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerDelete,
}

func init() {
	for _, c := range []*cobra.Command{customerAddCmd, customerEditCmd} {
		c.Flags().StringVar(&customerEmail, "email", "", "Contact email address")
		c.Flags().StringVar(&customerPhone, "phone", "", "Contact phone number")
		c.Flags().StringVar(&customerBillingContact, "billing-contact", "", "Billing contact name")
		c.Flags().StringVar(&customerBillingEmail, "billing-email", "", "Billing email address")
		c.Flags().StringVar(&customerBillingPhone, "billing-phone", "", "Billing phone number")
	}
	customerDeleteCmd.Flags().BoolVarP(&customerDeleteForce, "force", "f", false, "Skip confirmation prompt")

	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerEditCmd)
	customerCmd.AddCommand(customerDeleteCmd)
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	customer := model.Customer{
		Name:           strings.TrimSpace(args[0]),
		Email:          customerEmail,
		Phone:          customerPhone,
		BillingContact: customerBillingContact,
		BillingEmail:   customerBillingEmail,
		BillingPhone:   customerBillingPhone,
	}

	created, err := st.CreateCustomer(customer)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	fmt.Printf("Added customer %q\n", created.Name)
	return nil
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	customers, err := st.ListCustomers()
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	if len(customers) == 0 {
		fmt.Println("No customers yet")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Email", "Phone", "Billing Contact", "Billing Email"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, c := range customers {
		table.Append([]string{c.Name, c.Email, c.Phone, c.BillingContact, c.BillingEmail})
	}

	table.Render()
	return nil
}

func runCustomerEdit(cmd *cobra.Command, args []string) error {
	customer, err := st.GetCustomerByName(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer not found: %s", args[0])
	}

	// Only apply the flags the user actually set, so that an empty
	// value can clear a field.
	if cmd.Flags().Changed("email") {
		customer.Email = customerEmail
	}
	if cmd.Flags().Changed("phone") {
		customer.Phone = customerPhone
	}
	if cmd.Flags().Changed("billing-contact") {
		customer.BillingContact = customerBillingContact
	}
	if cmd.Flags().Changed("billing-email") {
		customer.BillingEmail = customerBillingEmail
	}
	if cmd.Flags().Changed("billing-phone") {
		customer.BillingPhone = customerBillingPhone
	}

	if err := st.UpdateCustomer(*customer); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	fmt.Printf("Updated customer %q\n", customer.Name)
	return nil
}

func runCustomerDelete(cmd *cobra.Command, args []string) error {
	customer, err := st.GetCustomerByName(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer not found: %s", args[0])
	}

	if !customerDeleteForce {
		reader := bufio.NewReader(os.Stdin)
		fmt.Printf("Delete customer %q? Existing entries keep the name. [y/N]: ", customer.Name)
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(strings.ToLower(input))
		if input != "y" && input != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := st.DeleteCustomer(customer.ID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	fmt.Println("Customer deleted")
	return nil
}
